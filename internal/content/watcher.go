package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vittin/site/pkg/logging"
)

// Watcher reloads a Store when its override file changes on disk.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	delay   time.Duration
	logger  logging.Logger
	target  string

	// OnReload, when set, is called after every reload attempt.
	OnReload func(err error)

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches the directory of the store's file so that editors that
// replace the file by rename are still noticed.
func NewWatcher(store *Store, delay time.Duration, logger logging.Logger) (*Watcher, error) {
	if store.Path() == "" {
		return nil, fmt.Errorf("content watcher: store has no file")
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}

	target, err := filepath.Abs(store.Path())
	if err != nil {
		return nil, fmt.Errorf("content watcher: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("content watcher: %w", err)
	}

	return &Watcher{
		store:   store,
		watcher: fw,
		delay:   delay,
		logger:  logger.With(logging.String("file", target)),
		target:  target,
	}, nil
}

// Run processes file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher error", logging.Err(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	err := w.store.Reload()
	if err != nil {
		w.logger.Error("content reload failed, keeping previous catalog", logging.Err(err))
	} else {
		w.logger.Info("content reloaded", logging.Int("videos", len(w.store.Current().Videos)))
	}

	if w.OnReload != nil {
		w.OnReload(err)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}
