package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fmtkit/retab/internal/workspace"
)

var (
	dryRun = kingpin.Flag("dry-run", "Report files that would change without rewriting them").Short('n').Bool()
	watch  = kingpin.Flag("watch", "Watch files for changes and reformat automatically").Short('w').Bool()
	files  = kingpin.Arg("files", "List of files to reformat").Required().ExistingFiles()
)

func main() {
	kingpin.Parse()

	ws := workspace.New(*dryRun)

	if *watch {
		if err := watchFiles(ws); err != nil {
			kingpin.Fatalf("failed to watch files: %s", err)
		}
		return
	}

	if !formatAll(ws) {
		os.Exit(1)
	}
}

// formatAll reformats every file in turn. A failure on one file is reported
// and does not stop the remaining ones.
func formatAll(ws *workspace.Workspace) (ok bool) {
	ok = true

	for _, fname := range *files {
		changed, err := ws.Format(fname)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", fname, err)
			ok = false
		case changed && *dryRun:
			fmt.Printf("Would format: %s\n", fname)
		case changed:
			fmt.Printf("Formatted: %s\n", fname)
		default:
			fmt.Printf("Unchanged: %s\n", fname)
		}
	}

	return ok
}

func watchFiles(ws *workspace.Workspace) error {
	watcher, err := NewWatcher(ws)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	for _, f := range *files {
		err = watcher.WatchFile(f)
		if err != nil {
			return fmt.Errorf("watch file %q: %w", f, err)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Println("watching files for changes...")

	<-ch
	return nil
}
