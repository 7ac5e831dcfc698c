// Package watch re-runs the validation pipeline when guide files change.
// It wraps fsnotify with a debounce so editor write bursts (save + rename +
// chmod) trigger one re-check instead of several.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches events arriving within this window.
const DefaultDebounce = 300 * time.Millisecond

// Watcher emits a batch of changed markdown paths per debounce window.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	Events chan []string
	Errors chan error
	done   chan struct{}
}

// New creates a watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		Events:   make(chan []string, 16),
		Errors:   make(chan error, 4),
		done:     make(chan struct{}),
	}, nil
}

// Add registers directories to watch. Directories are watched flat; the
// guide layout has no nesting below a category directory.
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return nil
}

// Start launches the event loop. Call Close to stop it.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var (
		pending = map[string]struct{}{}
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			batch := make([]string, 0, len(pending))
			for path := range pending {
				batch = append(batch, path)
			}
			pending = map[string]struct{}{}
			timer = nil
			fire = nil
			select {
			case w.Events <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// relevant filters for markdown content changes.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
