// Package watch provides a debounced filesystem watcher over a project's
// source tree.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanica/cppforge/internal/log"
)

// Watcher observes a set of paths and invokes a callback after changes have
// settled.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
}

// New creates a Watcher over the given paths. Paths that do not exist are
// skipped, so a project without a modules/ directory still watches the rest.
func New(paths []string, onChange func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := 0
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := watcher.Add(path); err != nil {
			log.Warn(fmt.Sprintf("couldn't watch %s: %v", path, err))
			continue
		}
		watched++
	}
	if watched == 0 {
		watcher.Close()
		return nil, fmt.Errorf("none of the watch paths exist: %v", paths)
	}

	return &Watcher{watcher: watcher, onChange: onChange}, nil
}

// Start blocks, dispatching debounced change callbacks until ctx is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	// Debounce timer to avoid rebuilding on every editor write event
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, w.onChange)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn(fmt.Sprintf("watcher error: %v", err))
		}
	}
}

// Stop closes the underlying watcher.
func (w *Watcher) Stop() {
	w.watcher.Close()
}
