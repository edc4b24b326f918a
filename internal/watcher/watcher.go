// Package watcher monitors a directory and feeds newly arriving files to
// the organizer. It backs the CLI watch mode; the organizer core itself
// stays synchronous and knows nothing about it.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watcher settings.
type Config struct {
	Debounce       time.Duration // Delay before a new file is handed to the handler
	IgnorePatterns []string      // Glob patterns to skip (e.g. "*.tmp", "*.part")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Debounce:       2 * time.Second,
		IgnorePatterns: DefaultIgnorePatterns(),
	}
}

// Summary contains stats from a watch session.
type Summary struct {
	Organized int
	Skipped   int
	Duration  time.Duration
}

// Handler processes one newly arrived file. A non-nil error counts the
// file as skipped; the watch session continues regardless.
type Handler func(path string) error

// Watcher monitors a single directory for newly created files.
type Watcher struct {
	config    Config
	handler   Handler
	fsWatcher *fsnotify.Watcher
	filter    *FileFilter
	debouncer *Debouncer
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	mu        sync.Mutex
	organized int
	skipped   int
}

// New creates a Watcher calling handler for each settled new file.
func New(config Config, handler Handler) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultConfig().Debounce
	}
	w := &Watcher{
		config:  config,
		handler: handler,
		filter:  NewFileFilter(config.IgnorePatterns),
		done:    make(chan struct{}),
	}
	w.debouncer = NewDebouncer(config.Debounce, w.handleFile)
	return w
}

// Start begins watching the directory. The watcher runs until Stop is called.
func (w *Watcher) Start(directory string) error {
	absDir, err := filepath.Abs(directory)
	if err != nil {
		return err
	}

	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(absDir); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts down the watcher and returns a summary of the session.
func (w *Watcher) Stop() Summary {
	close(w.done)
	w.wg.Wait()
	w.debouncer.CancelAll()
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return Summary{
		Organized: w.organized,
		Skipped:   w.skipped,
		Duration:  time.Since(w.startTime),
	}
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Only new files matter; writes reset the debounce so a file
			// still being copied in is not organized half-written.
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if w.filter.ShouldIgnore(event.Name) {
					continue
				}
				w.debouncer.Add(event.Name)
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				w.debouncer.Cancel(event.Name)
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching.
		}
	}
}

// handleFile runs the handler for one settled file and updates counters.
func (w *Watcher) handleFile(path string) {
	if w.handler == nil {
		return
	}
	err := w.handler(path)
	w.mu.Lock()
	if err != nil {
		w.skipped++
	} else {
		w.organized++
	}
	w.mu.Unlock()
}
