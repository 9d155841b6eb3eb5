// Package watch reports debounced changes to a set of files.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Change represents a detected file change.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Config configures the file watcher.
type Config struct {
	// Files are the files to watch. Their directories are watched so that
	// editors replacing a file by rename are still noticed.
	Files []string

	// Debounce is the quiet period after the last event before OnChange
	// runs.
	Debounce time.Duration

	Logger *slog.Logger
}

// Watcher monitors files for changes.
type Watcher struct {
	config   Config
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	ready    chan struct{}
}

// New creates a file watcher.
func New(config Config) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = DefaultDebounce
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Watcher{
		config: config,
		ready:  make(chan struct{}),
	}
}

// OnChange sets the callback for file changes. It runs on the goroutine
// that called Start.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Ready is closed once the watches of the current or next Start are
// installed.
func (w *Watcher) Ready() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready
}

// Start watches until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh, ready := w.stopCh, w.ready
	w.mu.Unlock()

	installed := false
	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		// Stop already reset the state when stopCh is no longer current.
		if w.stopCh != stopCh {
			return
		}
		w.running = false
		w.stopCh = nil
		if installed {
			w.ready = make(chan struct{})
		}
	}()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	targets := make(map[string]bool, len(w.config.Files))
	dirs := make(map[string]bool)
	for _, f := range w.config.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	close(ready)
	installed = true

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending *Change
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !targets[path] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			pending = &Change{Path: path, Op: ev.Op}
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
			} else {
				timer.Stop()
				timer.Reset(w.config.Debounce)
			}
			timerC = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("watch error", "error", err)
		case <-timerC:
			timerC = nil
			w.mu.Lock()
			fn := w.onChange
			w.mu.Unlock()
			if fn != nil && pending != nil {
				fn(*pending)
			}
			pending = nil
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	close(w.stopCh)
	w.stopCh = nil
	w.running = false
	w.ready = make(chan struct{})
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
