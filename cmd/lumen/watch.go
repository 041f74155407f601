package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/lumen-lang/lumen/internal/symbols"
)

// watchFile re-runs inference over path's contents every time the file
// changes on disk, following the event-channel wrapper shape the Orizon
// example's internal/runtime/vfs/watch_fsnotify.go uses around fsnotify.
func watchFile(path string, env *symbols.Environment, sessionID string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	runOnce := func() {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Printf("session=%s watch: read %s: %v", sessionID, path, err)
			return
		}
		ty, err := inferSource(string(src), env)
		if err != nil {
			log.Printf("session=%s watch: %s: %v", sessionID, path, err)
			return
		}
		fmt.Printf("%s :: %s\n", path, ty.String())
	}

	runOnce()
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runOnce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("session=%s watch error: %v", sessionID, err)
		}
	}
}
