// Package limits provides per-client rate limiting for the chat endpoints.
package limits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

// ErrRateLimitExceeded is returned when a client has no tokens left.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimiter limits the rate of operations per key.
type RateLimiter interface {
	// Allow returns true if the operation is allowed.
	Allow(key string) bool
}

// TokenBucket implements a token bucket rate limiter.
type TokenBucket struct {
	rate    float64 // tokens per second
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	buckets sync.Map // key -> *bucket
}

type bucket struct {
	tokens   float64
	lastFill time.Time
	mu       sync.Mutex
}

// Option configures a TokenBucket.
type Option func(*TokenBucket)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(tb *TokenBucket) {
		tb.now = now
	}
}

// WithIdleTTL sets how long an untouched bucket survives Sweep.
func WithIdleTTL(d time.Duration) Option {
	return func(tb *TokenBucket) {
		tb.idleTTL = d
	}
}

// NewTokenBucket creates a token bucket limiter refilling rate tokens per
// second up to burst.
func NewTokenBucket(rate float64, burst int, opts ...Option) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	tb := &TokenBucket{
		rate:    rate,
		burst:   burst,
		idleTTL: time.Hour,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(tb)
	}
	return tb
}

// Allow checks if an operation is allowed for the given key.
func (tb *TokenBucket) Allow(key string) bool {
	return tb.AllowN(key, 1)
}

// AllowN checks if n operations are allowed for the given key.
func (tb *TokenBucket) AllowN(key string, n int) bool {
	b := tb.getBucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := tb.now()
	elapsed := now.Sub(b.lastFill).Seconds()
	b.tokens += elapsed * tb.rate
	if b.tokens > float64(tb.burst) {
		b.tokens = float64(tb.burst)
	}
	b.lastFill = now

	if b.tokens >= float64(n) {
		b.tokens -= float64(n)
		return true
	}
	return false
}

func (tb *TokenBucket) getBucket(key string) *bucket {
	if b, ok := tb.buckets.Load(key); ok {
		return b.(*bucket)
	}

	newBucket := &bucket{
		tokens:   float64(tb.burst),
		lastFill: tb.now(),
	}

	actual, _ := tb.buckets.LoadOrStore(key, newBucket)
	return actual.(*bucket)
}

// Sweep drops buckets idle for longer than the idle TTL and returns how many
// were removed.
func (tb *TokenBucket) Sweep() int {
	now := tb.now()
	removed := 0
	tb.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		if now.Sub(b.lastFill) > tb.idleTTL {
			tb.buckets.Delete(key)
			removed++
		}
		b.mu.Unlock()
		return true
	})
	return removed
}

// Run sweeps idle buckets every interval until ctx is done.
func (tb *TokenBucket) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tb.Sweep()
		}
	}
}

// Middleware rejects requests over the limit with 429 and a JSON error body.
func Middleware(limiter RateLimiter, keyFunc func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(keyFunc(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": ErrRateLimitExceeded.Error()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
