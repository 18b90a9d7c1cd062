// Package watch pushes filesystem change notifications for the directory
// currently on screen, so the listing refreshes without polling.
package watch

import (
	"fmt"
	"os"
	"sync"

	"trooper/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows a single directory at a time and signals whenever its
// contents change. Navigation swaps the watched directory with Rewatch.
type Watcher struct {
	// Channel delivering the paths of changed entries
	changes chan string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the watched directory
	mutex   sync.RWMutex
	dir     string
	running bool
}

// New creates a watcher. Point it at a directory with Rewatch and call
// Start to begin delivering events.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan string, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Rewatch points the watcher at dir, dropping the previous directory.
func (w *Watcher) Rewatch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		// The old directory may already be gone, nothing to undo then
		_ = w.fsWatcher.Remove(w.dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.dir = dir

	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Dir returns the directory currently being watched.
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes returns the channel that delivers changed entry paths.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start begins the event processing loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				// Only ops that change what a listing shows matter here;
				// bare Chmod events are noise
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
					!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					continue
				}

				// Send non-blockingly: a pending refresh already covers
				// this change
				select {
				case w.changes <- event.Name:
				default:
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts event delivery and releases the watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false

	// Close the public channel last so readers drain cleanly
	close(w.changes)
}

// IsRunning reports whether the event loop is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
