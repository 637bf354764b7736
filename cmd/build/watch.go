/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/tokman/internal/logger"
)

// DefaultDebounce is the delay between the last change and a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// watchedExtensions are the stylesheet and config extensions that trigger a rebuild.
var watchedExtensions = []string{".css", ".scss", ".yaml", ".yml", ".json"}

// Watcher triggers rebuilds when files in the watched directories change.
// Bursts of events within the debounce window trigger one rebuild.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	watched  map[string]bool
}

// NewWatcher watches dirs. Directories that cannot be watched are skipped.
func NewWatcher(dirs []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		watched:  make(map[string]bool),
	}
	w.Add(dirs)
	return w, nil
}

// Add watches further directories. Run must not be executing concurrently.
func (w *Watcher) Add(dirs []string) {
	for _, dir := range dirs {
		if w.watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			logger.Warn("failed to watch %s: %v", dir, err)
			continue
		}
		w.watched[dir] = true
		logger.Debug("watching %s", dir)
	}
}

// Run calls rebuild after each debounced burst of relevant changes until
// ctx is done. rebuild runs on the Run goroutine.
func (w *Watcher) Run(ctx context.Context, rebuild func()) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if relevant(event) {
				logger.Debug("file event: %s %s", event.Op, event.Name)
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error: %v", err)

		case <-timer.C:
			rebuild()
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether an event should trigger a rebuild.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".#") || strings.HasSuffix(base, "~") {
		return false
	}
	return slices.Contains(watchedExtensions, strings.ToLower(filepath.Ext(base)))
}
