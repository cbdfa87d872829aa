package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestShutdown_RunsHooksInPriorityOrder(t *testing.T) {
	h := NewHandler(time.Second, nil)

	var order []string
	h.RegisterFunc("registry", PriorityChat, func(ctx context.Context) error {
		order = append(order, "registry")
		return nil
	})
	h.RegisterFunc("http", PriorityHTTP, func(ctx context.Context) error {
		order = append(order, "http")
		return nil
	})
	h.Register(CloseableHook("watcher", PriorityWatcher, closerFunc(func() error {
		order = append(order, "watcher")
		return nil
	})))

	require.NoError(t, h.Shutdown())
	assert.Equal(t, []string{"http", "watcher", "registry"}, order)
	assert.ErrorIs(t, h.Shutdown(), ErrAlreadyClosed)
}

func TestShutdown_JoinsErrors(t *testing.T) {
	h := NewHandler(time.Second, nil)
	boom := errors.New("boom")
	ran := false

	h.RegisterFunc("fails", PriorityHTTP, func(ctx context.Context) error { return boom })
	h.RegisterFunc("still runs", PriorityLast, func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := h.Shutdown()
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran)
}

func TestShutdown_Timeout(t *testing.T) {
	h := NewHandler(20*time.Millisecond, nil)
	h.RegisterFunc("slow", PriorityHTTP, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	assert.ErrorIs(t, h.Shutdown(), ErrShutdownTimeout)
}

func TestWait_ContextCancelled(t *testing.T) {
	h := NewHandler(time.Second, nil)
	called := make(chan struct{})
	h.RegisterFunc("http", PriorityHTTP, func(ctx context.Context) error {
		close(called)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.Wait(ctx))
	select {
	case <-called:
	default:
		t.Fatal("hook did not run")
	}

	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}
}
