package chat

import "context"

// ConversationConfig is fixed for the lifetime of a conversation.
type ConversationConfig struct {
	Model             string
	SystemInstruction string
}

// Provider opens conversations with a generative-language API.
type Provider interface {
	NewConversation(ctx context.Context, cfg ConversationConfig) (Conversation, error)
}

// Conversation is a provider-side chat that keeps its own history.
type Conversation interface {
	// Send forwards one user message and returns the reply text.
	Send(ctx context.Context, text string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, cfg ConversationConfig) (Conversation, error)

// NewConversation calls f.
func (f ProviderFunc) NewConversation(ctx context.Context, cfg ConversationConfig) (Conversation, error) {
	return f(ctx, cfg)
}

// ConversationFunc adapts a function to Conversation.
type ConversationFunc func(ctx context.Context, text string) (string, error)

// Send calls f.
func (f ConversationFunc) Send(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
