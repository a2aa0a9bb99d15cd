package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fmtkit/retab/internal/workspace"
	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	watchingDirs, watchingFiles map[string]struct{}

	ws      *workspace.Workspace
	watcher *fsnotify.Watcher
}

func NewWatcher(ws *workspace.Workspace) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watchingDirs:  make(map[string]struct{}),
		watchingFiles: make(map[string]struct{}),
		ws:            ws,
		watcher:       watcher,
	}
	go w.eventLoop()

	return w, nil
}

func (w *Watcher) WatchFile(path string) error {
	fullPath, _ := filepath.Abs(path)
	w.watchingFiles[fullPath] = struct{}{}

	dir := filepath.Dir(fullPath)
	if _, ok := w.watchingDirs[dir]; ok {
		return nil
	}

	err := w.watcher.Add(dir)
	if err != nil {
		return err
	}

	w.watchingDirs[dir] = struct{}{}

	return nil
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) {
				continue
			}

			fname, _ := filepath.Abs(event.Name)

			if _, ok := w.watchingFiles[fname]; !ok {
				continue
			}

			w.fileModified(fname)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Println("error:", err)
		}
	}
}

func (w *Watcher) fileModified(fullPath string) {
	name := filepath.Base(fullPath)

	// A write-back triggers one more event, but the second pass leaves the
	// file unchanged and so doesn't write again.
	changed, err := w.ws.Format(fullPath)
	switch {
	case err != nil:
		log.Printf("failed to reformat %q: %s", fullPath, err)
	case changed:
		log.Printf("reformatted %q", name)
	}
}
