package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the data file changes on disk.
type Event struct {
	Path string
}

// Watch streams change events for the data file until ctx is cancelled.
// Saves land via rename, so creates and renames count as changes alongside
// writes. Bursts are coalesced so consumers redraw once per save, and events
// are dropped rather than blocking when the consumer is not draining.
func (s *fileStore) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure data directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 8)
	target, err := filepath.Abs(s.path)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: resolve %s: %w", s.path, err)
	}

	go func() {
		defer close(events)
		defer closeWatcher()

		const quiet = 100 * time.Millisecond
		var pending *time.Timer
		var timerC <-chan time.Time

		flush := func() {
			timerC = nil
			select {
			case events <- Event{Path: s.path}:
			default:
				// Consumer is behind; the next refresh picks it up.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				flush()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				abs, err := filepath.Abs(evt.Name)
				if err != nil || abs != target {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(quiet)
				} else {
					if !pending.Stop() {
						select {
						case <-pending.C:
						default:
						}
					}
					pending.Reset(quiet)
				}
				timerC = pending.C
			}
		}
	}()

	return events, nil
}
