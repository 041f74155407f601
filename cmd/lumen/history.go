package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// History is a small on-disk cache mapping previously-inferred expression
// source text to its pretty-printed type, modeled on the corpus's
// database/sql plus driver-registration pattern for SQLite.
type History struct {
	db *sql.DB
}

const historySchema = `
CREATE TABLE IF NOT EXISTS inferences (
	source     TEXT PRIMARY KEY,
	type_text  TEXT NOT NULL,
	session_id TEXT NOT NULL
);`

// OpenHistory opens (creating if necessary) the history database at path.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Lookup returns the cached type text for source, if any.
func (h *History) Lookup(source string) (typeText string, ok bool, err error) {
	row := h.db.QueryRow(`SELECT type_text FROM inferences WHERE source = ?`, source)
	if scanErr := row.Scan(&typeText); scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, scanErr
	}
	return typeText, true, nil
}

// Record stores or replaces the cached result for source.
func (h *History) Record(source, typeText, sessionID string) error {
	_, err := h.db.Exec(
		`INSERT INTO inferences (source, type_text, session_id) VALUES (?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET type_text = excluded.type_text, session_id = excluded.session_id`,
		source, typeText, sessionID,
	)
	return err
}

// Close releases the underlying database handle.
func (h *History) Close() error { return h.db.Close() }
