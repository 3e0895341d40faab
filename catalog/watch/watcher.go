// Package watch notifies callers when catalog contents change on disk.
// Changes within the debounce window collapse into a single notification per
// path, mirroring how editors save files in bursts.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/XaaXaaX/sdk/internal/log"
)

// Event reports a changed path under the watched catalog root.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a catalog root recursively and emits debounced change
// events. Close must be called to release the underlying watches.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	events   chan Event
	done     chan struct{}
}

// New starts watching root and all directories below it. debounce bounds how
// long a burst of writes to the same path is coalesced before one event is
// emitted.
func New(root string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", root, err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events returns the channel of debounced change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and closes the events channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	defer close(w.events)

	pending := make(map[string]fsnotify.Op)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatch, "Watcher error", "error", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// New resource directories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.fsw.Add(ev.Name); err != nil {
						log.Warn(log.CatWatch, "Failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			pending[ev.Name] |= ev.Op
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			for path, op := range pending {
				select {
				case w.events <- Event{Path: path, Op: op}:
				case <-w.done:
					return
				}
			}
			pending = make(map[string]fsnotify.Op)
			fire = nil
		}
	}
}
