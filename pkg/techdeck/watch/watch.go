// Package watch rebuilds the deck when screenshots change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// RebuildFunc is called once per settled batch of screenshot changes.
type RebuildFunc func() error

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Rebuilds      int
	Errors        int
	LastEventPath string
	LastEventType string
}

// Watcher watches the images directory and coalesces screenshot changes.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	rebuild   RebuildFunc
	log       *zap.Logger
	dirty     bool
	lastEvent time.Time
	stats     Stats
}

// New creates the images directory if needed and starts watching it.
// Events are only processed once Run is called.
func New(dir string, debounce time.Duration, rebuild RebuildFunc, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	log.Info("Watching screenshots", zap.String("dir", dir), zap.Duration("debounce", debounce))

	return &Watcher{
		watcher:  fw,
		dir:      dir,
		debounce: debounce,
		rebuild:  rebuild,
		log:      log,
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	tick := w.debounce / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event, time.Now())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("Watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case now := <-ticker.C:
			w.flush(now)
		}
	}
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// handleEvent records a screenshot change.
func (w *Watcher) handleEvent(event fsnotify.Event, now time.Time) {
	if !IsImage(event.Name) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return
	}

	w.log.Debug("Screenshot changed", zap.String("event", eventType), zap.String("path", event.Name))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirty = true
	w.lastEvent = now
	w.stats.Events++
	w.stats.LastEventPath = event.Name
	w.stats.LastEventType = eventType
}

// flush runs the rebuild once the debounce window has passed without new events.
func (w *Watcher) flush(now time.Time) {
	w.mu.Lock()
	if !w.dirty || now.Sub(w.lastEvent) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.dirty = false
	w.mu.Unlock()

	err := w.rebuild()

	w.mu.Lock()
	w.stats.Rebuilds++
	if err != nil {
		w.stats.Errors++
	}
	w.mu.Unlock()

	if err != nil {
		w.log.Error("Rebuild failed", zap.Error(err))
		return
	}
	w.log.Info("Rebuilt deck after screenshot change")
}

// IsImage reports whether name has a screenshot extension.
func IsImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
