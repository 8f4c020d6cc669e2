package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reports changes to a set of files.
//
// Parent directories are watched rather than the files themselves so that
// editors replacing a file through a rename are still noticed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	debounce time.Duration
	changes  atomic.Uint32
	mu       sync.Mutex
	timer    *time.Timer
	// runMu keeps a late timer from running onChange alongside an earlier one.
	runMu sync.Mutex
}

// NewWatcher creates a watcher calling onChange, debounced, after any of
// paths is written, created or renamed into place.
func NewWatcher(paths []string, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(paths)),
		onChange: onChange,
		debounce: defaultDebounce,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("config: failed to resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("config: failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run delivers change notifications until ctx is done. It closes the watcher
// on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if abs, err := filepath.Abs(event.Name); err == nil && w.files[abs] {
				w.schedule(abs)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("Watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce timer for path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.runMu.Lock()
		defer w.runMu.Unlock()

		count := w.changes.Add(1)
		slog.Info("File changed", "path", path, "count", count)
		w.onChange(path)
	})
}

// Close stops watching. Pending notifications are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.watcher.Close()
}

// ChangeCount returns the number of notifications delivered so far.
func (w *Watcher) ChangeCount() uint32 {
	return w.changes.Load()
}
