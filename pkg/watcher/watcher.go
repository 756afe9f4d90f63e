// Package watcher re-runs a callback when an event script changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 150 * time.Millisecond

// FileWatcher watches script files and calls back after they settle.
// Parent directories are watched rather than the files themselves so that
// editors which save by rename keep triggering.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *zap.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	dirs      map[string]bool
}

// NewFileWatcher creates a watcher; a nil logger discards output
func NewFileWatcher(debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &FileWatcher{
		watcher:   w,
		log:       log,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		dirs:      make(map[string]bool),
	}, nil
}

// Watch registers callback for file. The callback receives the absolute path.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	dir := filepath.Dir(absPath)
	if !fw.dirs[dir] {
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		fw.dirs[dir] = true
	}
	fw.callbacks[absPath] = callback
	fw.log.Debug("watching", zap.String("file", absPath))
	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, ok := fw.callbacks[filePath]
	if !ok {
		return
	}

	if timer, ok := fw.timers[filePath]; ok {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.log.Debug("changed", zap.String("file", filePath))
		callback(filePath)
	})
}

// Close stops pending callbacks and releases the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
