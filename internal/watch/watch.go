// Package watch rebuilds the site when its sources change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc runs one full build.
type RebuildFunc func(ctx context.Context) error

// Watcher watches directory trees and calls a RebuildFunc once a burst of
// changes has settled. Rebuilds never overlap.
type Watcher struct {
	fsw      *fsnotify.Watcher
	rebuild  RebuildFunc
	logger   *slog.Logger
	debounce time.Duration

	mu sync.Mutex // serializes rebuilds
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New starts watching every directory below each of roots. Missing roots are
// logged and ignored.
func New(roots []string, rebuild RebuildFunc, logger *slog.Logger, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fsw: fsw, rebuild: rebuild, logger: logger, debounce: DefaultDebounce}
	for _, o := range opts {
		o(w)
	}

	for _, root := range roots {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Directory not found, not watching", "path", root)
			continue
		}
		logger.Info("Setting up watch", "path", root)
		w.addTree(root)
	}
	return w, nil
}

// addTree watches root and all directories below it.
func (w *Watcher) addTree(root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Error("Error walking", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				w.logger.Error("Failed to watch", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		w.logger.Error("Error during directory walk", "path", root, "error", err)
	}
}

// Run dispatches file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Info("Change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() { w.runRebuild(ctx) })
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) runRebuild(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Info("Rebuilding site due to changes")
	if err := w.rebuild(ctx); err != nil {
		w.logger.Error("Error during rebuild", "error", err)
		return
	}
	w.logger.Info("Site rebuilt successfully")
}
