// Package gemini implements chat.Provider on top of the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"google.golang.org/genai"

	"github.com/vittin/site/internal/chat"
)

// ErrNoAPIKey is returned when the provider is used without a key.
var ErrNoAPIKey = errors.New("gemini: api key is empty")

// Provider opens Gemini chats. The SDK client is created on first use and
// shared by every conversation.
type Provider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	client *genai.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL points the client at another endpoint, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(p *Provider) {
		p.baseURL = u
	}
}

// WithHTTPClient sets the HTTP client used by the SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// New creates a provider for the Gemini Developer API.
func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{apiKey: apiKey}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) sdk(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	cfg := &genai.ClientConfig{
		APIKey:     p.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: p.httpClient,
	}
	if p.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	p.client = client
	return client, nil
}

// NewConversation creates a chat carrying the system instruction.
func (p *Provider) NewConversation(ctx context.Context, cfg chat.ConversationConfig) (chat.Conversation, error) {
	client, err := p.sdk(ctx)
	if err != nil {
		return nil, err
	}

	var gc *genai.GenerateContentConfig
	if cfg.SystemInstruction != "" {
		gc = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser),
		}
	}

	c, err := client.Chats.Create(ctx, cfg.Model, gc, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: create chat: %w", err)
	}
	return &conversation{chat: c}, nil
}

type conversation struct {
	chat *genai.Chat
}

// Send forwards one user message. The SDK chat records both turns in its
// history on success.
func (c *conversation) Send(ctx context.Context, text string) (string, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("gemini: send message: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
