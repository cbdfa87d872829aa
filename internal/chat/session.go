package chat

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Session is the chat handle of one widget mount. It owns the provider
// conversation, created on first use and reused afterwards, and the
// transcript. Sends on one session are serialised.
type Session struct {
	id       string
	created  time.Time
	lastUsed atomic.Int64 // unix nanos
	inflight atomic.Int32

	mu         sync.Mutex
	conv       Conversation
	transcript Transcript
}

// NewSession creates an empty session.
func NewSession(id string, now time.Time) *Session {
	s := &Session{id: id, created: now}
	s.lastUsed.Store(now.UnixNano())
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Transcript returns a copy of the turns so far.
func (s *Session) Transcript() Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(Transcript(nil), s.transcript...)
}

// LastUsed returns when the session last sent a message (or was created).
func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

// Busy reports whether a send is in progress or waiting.
func (s *Session) Busy() bool {
	return s.inflight.Load() > 0
}

func (s *Session) touch(now time.Time) {
	s.lastUsed.Store(now.UnixNano())
}

// conversation returns the session's provider conversation, opening it on
// first use. A failed open is not cached. Callers hold s.mu.
func (s *Session) conversation(ctx context.Context, p Provider, cfg ConversationConfig) (Conversation, error) {
	if s.conv != nil {
		return s.conv, nil
	}
	conv, err := p.NewConversation(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s.conv = conv
	return conv, nil
}
