package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the event bursts editors and slicers emit
// while saving a mesh file.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a single mesh file and invokes a callback after each
// change settles. The parent directory is watched rather than the file
// itself: many editors save by writing a temp file and renaming it over
// the original, which would silently drop a per-file watch.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(string)

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for the given file. onChange receives the
// watched path once per settled change.
func New(path string, debounce time.Duration, onChange func(string)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fs.Add(filepath.Dir(absPath)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fs:       fs,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Run blocks processing events until ctx is cancelled or the watcher
// is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleCallback()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("[Watcher] error: %v", err)
		}
	}
}

func (w *Watcher) scheduleCallback() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(w.path)
	})
}

// Close stops the watcher. A pending debounced callback may still fire.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
