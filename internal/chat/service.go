package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vittin/site/pkg/logging"
)

// ErrNoProvider is logged when the service is enabled without a provider.
var ErrNoProvider = errors.New("chat provider not configured")

// Config configures the send flow.
type Config struct {
	// APIKey is only checked for presence; an empty key keeps chat offline.
	APIKey            string
	Model             string
	SystemInstruction string
}

// Service forwards widget messages to the provider.
type Service struct {
	provider Provider
	cfg      Config
	logger   logging.Logger
	now      func() time.Time
}

// NewService creates the send flow. provider may be nil when cfg has no key.
func NewService(cfg Config, provider Provider, logger logging.Logger) *Service {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SystemInstruction == "" {
		cfg.SystemInstruction = DefaultSystemInstruction
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Online reports whether a credential is configured.
func (s *Service) Online() bool {
	return s.cfg.APIKey != ""
}

// Model returns the configured model id.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Send appends text to the session transcript, obtains the reply and appends
// it too. It never fails: a missing credential, a provider error or a panic
// in the provider all become fixed replies with IsError set.
func (s *Service) Send(ctx context.Context, sess *Session, text string) Message {
	sess.inflight.Add(1)
	defer sess.inflight.Add(-1)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	sess.touch(now)
	sess.transcript = append(sess.transcript, userMessage(text, now))

	reply := s.reply(ctx, sess, text)

	sess.transcript = append(sess.transcript, reply)
	return reply
}

func (s *Service) reply(ctx context.Context, sess *Session, text string) (msg Message) {
	if !s.Online() {
		return modelMessage(OfflineReply, true, s.now())
	}

	logger := logging.L(ctx).With(logging.Session(sess.id))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("chat provider panicked", logging.Any("panic", r))
			msg = modelMessage(FallbackReply, true, s.now())
		}
	}()

	out, err := s.forward(ctx, sess, text)
	if err != nil {
		logger.Error("chat provider failed", logging.Err(err))
		return modelMessage(FallbackReply, true, s.now())
	}
	if out == "" {
		return modelMessage(EmptyReply, false, s.now())
	}
	return modelMessage(out, false, s.now())
}

func (s *Service) forward(ctx context.Context, sess *Session, text string) (string, error) {
	if s.provider == nil {
		return "", ErrNoProvider
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	conv, err := sess.conversation(ctx, s.provider, ConversationConfig{
		Model:             s.cfg.Model,
		SystemInstruction: s.cfg.SystemInstruction,
	})
	if err != nil {
		return "", fmt.Errorf("open conversation: %w", err)
	}

	return conv.Send(ctx, text)
}
