// Command lumen is the driver around the Lumen type inference engine: it
// parses an expression, infers its principal type against an optional
// project environment, and prints the result.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/lumen-lang/lumen/internal/analyzer"
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/symbols"
	"github.com/lumen-lang/lumen/internal/typesystem"
)

const configFileName = "lumen.yaml"

func main() {
	sessionID := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("lumen[%s] ", sessionID[:8]))
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version":
		fmt.Println(config.Version)
		return
	case "-help", "--help", "help":
		usage()
		return
	}

	cfg, err := LoadProjectConfig(configFileName)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	env, err := cfg.Environment()
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "infer":
		runInfer(os.Args[2:], cfg, env, sessionID)
	case "watch":
		runWatch(os.Args[2:], env, sessionID)
	case "test":
		runTest(os.Args[2:], env)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  lumen infer <expression>     infer and print the type of an expression
  lumen watch <file.lum>       re-infer a file's contents on every change
  lumen test <file1> [file2..] batch-infer one expression per line, resetting between lines
  lumen version                print the Lumen engine version
`)
}

func runInfer(args []string, cfg *ProjectConfig, env *symbols.Environment, sessionID string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: lumen infer <expression>")
		os.Exit(1)
	}
	source := args[0]

	var hist *History
	if cfg.History {
		home, err := os.UserHomeDir()
		if err == nil {
			hist, err = OpenHistory(filepath.Join(home, ".lumen", "history.db"))
			if err != nil {
				log.Printf("history disabled: %v", err)
				hist = nil
			} else {
				defer hist.Close()
			}
		}
	}

	if hist != nil {
		if cached, ok, err := hist.Lookup(source); err == nil && ok {
			fmt.Println(cached)
			return
		}
	}

	ty, err := inferSource(source, env)
	if err != nil {
		printInferError(cfg, err)
		os.Exit(1)
	}

	fmt.Println(ty.String())
	if hist != nil {
		if err := hist.Record(source, ty.String(), sessionID); err != nil {
			log.Printf("history record failed: %v", err)
		}
	}
}

func runWatch(args []string, env *symbols.Environment, sessionID string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: lumen watch <file.lum>")
		os.Exit(1)
	}
	if !config.HasSourceExt(args[0]) {
		log.Printf("warning: %s does not have the %s extension", args[0], config.SourceFileExt)
	}
	if err := watchFile(args[0], env, sessionID); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// runTest batch-infers one expression per line across the given files,
// resetting the shared engine's fresh counter between lines so printed
// unknowns stay stable the way config.IsTestMode promises.
func runTest(files []string, env *symbols.Environment) {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lumen test <file1> [file2...]")
		os.Exit(1)
	}
	config.IsTestMode = true

	engine := analyzer.NewEngine()
	failures := 0
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("%v", err)
			failures++
			continue
		}
		scanner := bufio.NewScanner(f)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if line == "" {
				continue
			}
			if config.IsTestMode {
				engine.Reset()
			}
			expr, err := parser.ParseExpr(line)
			if err != nil {
				fmt.Printf("%s:%d: parse error: %v\n", path, lineNo, err)
				failures++
				continue
			}
			ty, err := engine.InferExpr(env, expr)
			if err != nil {
				fmt.Printf("%s:%d: %v\n", path, lineNo, err)
				failures++
				continue
			}
			fmt.Printf("%s:%d: %s\n", path, lineNo, ty.String())
		}
		f.Close()
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func inferSource(source string, env *symbols.Environment) (typesystem.Type, error) {
	expr, err := parser.ParseExpr(source)
	if err != nil {
		return nil, err
	}
	engine := analyzer.NewEngine()
	return engine.InferExpr(env, expr)
}

// printInferError prints err to stderr, colorized when stdout is a real
// terminal (or a Cygwin pty); a color setting in lumen.yaml overrides that
// check.
func printInferError(cfg *ProjectConfig, err error) {
	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.Color != nil {
		colorize = *cfg.Color
	}
	if colorize {
		fmt.Fprintf(os.Stderr, "\x1b[31m%v\x1b[0m\n", err)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}
