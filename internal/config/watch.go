package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/wpgtech/tech-events/internal/logger"
)

// Loader re-reads the YAML config file when it changes, for serve mode.
// One-shot invocations should call Load directly.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  Config
	onChange []func(Config)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Loader{path: path, current: cfg}, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the config on file
// changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					l.reload()
				}
			case <-w.Errors:
				// Keep serving with the old config.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}

func (l *Loader) reload() {
	cfg, err := Load(l.path)
	if err != nil {
		logger.Warn("Config reload skipped", logger.Fields{
			"path":   l.path,
			"reason": err.Error(),
		})
		return
	}

	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}

	logger.Info("Config reloaded", logger.Fields{"path": l.path})
}
