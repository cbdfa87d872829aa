// Package shutdown runs ordered cleanup hooks when the server stops.
package shutdown

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vittin/site/pkg/logging"
)

// Common shutdown errors.
var (
	ErrShutdownTimeout = errors.New("shutdown timed out")
	ErrAlreadyClosed   = errors.New("shutdown handler already closed")
)

// Hook priorities. Lower runs earlier.
const (
	PriorityHTTP    = 100 // stop accepting page and chat requests
	PriorityWatcher = 200 // content file watcher
	PriorityChat    = 300 // chat session registry
	PriorityLast    = 1000
)

// Hook represents a shutdown hook.
type Hook struct {
	Name     string
	Priority int
	Fn       func(ctx context.Context) error
}

// Handler manages graceful shutdown.
type Handler struct {
	timeout time.Duration
	logger  logging.Logger
	hooks   []Hook
	done    chan struct{}
	closed  bool
	mu      sync.Mutex
}

// NewHandler creates a handler that gives all hooks timeout to finish.
func NewHandler(timeout time.Duration, logger logging.Logger) *Handler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Handler{
		timeout: timeout,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Register adds a shutdown hook.
func (h *Handler) Register(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// RegisterFunc registers fn as a hook.
func (h *Handler) RegisterFunc(name string, priority int, fn func(ctx context.Context) error) {
	h.Register(Hook{Name: name, Priority: priority, Fn: fn})
}

// Wait blocks until ctx is done (typically a signal.NotifyContext) and then
// runs the hooks. It returns nil without running hooks if Shutdown was
// already called.
func (h *Handler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-h.done:
		return nil
	}
	return h.Shutdown()
}

// Shutdown runs every hook in priority order under a shared deadline.
func (h *Handler) Shutdown() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrAlreadyClosed
	}
	h.closed = true
	close(h.done)

	hooks := make([]Hook, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority < hooks[j].Priority
	})

	h.logger.Info("shutting down", logging.Int("hooks", len(hooks)))

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	var errs []error
	for _, hook := range hooks {
		start := time.Now()
		err := hook.Fn(ctx)

		fields := []logging.Field{
			logging.String("hook", hook.Name),
			logging.Duration("duration", time.Since(start)),
		}
		if err != nil {
			h.logger.Error("shutdown hook failed", append(fields, logging.Err(err))...)
			errs = append(errs, err)
		} else {
			h.logger.Debug("shutdown hook done", fields...)
		}

		if ctx.Err() != nil {
			return errors.Join(append(errs, ErrShutdownTimeout)...)
		}
	}

	return errors.Join(errs...)
}

// Done returns a channel that's closed once shutdown has started.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}

// CloseableHook creates a hook for anything with a Close() method.
func CloseableHook(name string, priority int, closer interface{ Close() error }) Hook {
	return Hook{
		Name:     name,
		Priority: priority,
		Fn: func(ctx context.Context) error {
			return closer.Close()
		},
	}
}
