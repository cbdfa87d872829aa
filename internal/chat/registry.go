package chat

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionLimit is returned when the registry is full and every session
// has a send in progress.
var ErrSessionLimit = errors.New("chat session limit reached")

// Registry maps widget session ids to sessions.
type Registry struct {
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates a registry that forgets sessions idle for ttl and holds
// at most maxSessions.
func NewRegistry(ttl time.Duration, maxSessions int, opts ...RegistryOption) *Registry {
	r := &Registry{
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewID mints a session id for a page render.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id minted by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// Get returns the session for id, creating it if needed. When the registry
// is full, expired sessions are dropped and then the least recently used
// idle session is evicted.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if s, ok := r.sessions[id]; ok {
		if s.Busy() || now.Sub(s.LastUsed()) <= r.ttl {
			return s, nil
		}
		delete(r.sessions, id)
	}

	if len(r.sessions) >= r.maxSessions {
		r.sweepLocked(now)
	}
	if len(r.sessions) >= r.maxSessions && !r.evictOldestLocked() {
		return nil, ErrSessionLimit
	}

	s := NewSession(id, now)
	r.sessions[id] = s
	return s, nil
}

// Lookup returns an existing live session.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || r.now().Sub(s.LastUsed()) > r.ttl {
		return nil, false
	}
	return s, true
}

// Len returns the number of held sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Max returns the session cap.
func (r *Registry) Max() int {
	return r.maxSessions
}

// Sweep drops sessions idle longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

func (r *Registry) sweepLocked(now time.Time) int {
	removed := 0
	for id, s := range r.sessions {
		if !s.Busy() && now.Sub(s.LastUsed()) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) evictOldestLocked() bool {
	type entry struct {
		id   string
		last time.Time
	}
	entries := make([]entry, 0, len(r.sessions))
	for id, s := range r.sessions {
		if !s.Busy() {
			entries = append(entries, entry{id: id, last: s.LastUsed()})
		}
	}
	if len(entries) == 0 {
		return false
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].last.Equal(entries[j].last) {
			return entries[i].id < entries[j].id
		}
		return entries[i].last.Before(entries[j].last)
	})

	delete(r.sessions, entries[0].id)
	return true
}

// Run sweeps expired sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close forgets every session.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.sessions)
	return nil
}
