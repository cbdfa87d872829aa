// Package chat implements the VITTIN BOT widget: a pass-through from one
// user string to a generative-language provider and back, with a transcript
// per widget session.
package chat

import "time"

// Role is the author of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Fixed replies shown in place of a provider answer.
const (
	OfflineReply  = "Módulo de comunicação offline. (Chave API ausente)"
	EmptyReply    = "Interferência atmosférica detectada."
	FallbackReply = "Erro nos propulsores de dados. Tente novamente."
)

// DefaultModel is the provider model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultSystemInstruction is the VITTIN BOT persona.
const DefaultSystemInstruction = `You are 'VITTIN BOT', the AI assistant for the VITTIN YouTube channel.

The channel covers: Mechanical & Civil Engineering, Paleontology, Geochronology, Astronomy, and Technology.
Style: "Roots & Tech".
Tone: Curious, precise, scientific but accessible, slightly enthusiastic about engineering feats and dinosaurs.

Key Colors to mention if asked about branding: Deep Green (#264039), Orange (#f29849).

Role: Answer questions about science, engineering, or the channel's latest series.

Keep responses concise (max 2-3 sentences). Use emojis like 🦕, 🚀, ⚙️, 🌌.`

// Message is one turn of a conversation.
type Message struct {
	Role    Role      `json:"role"`
	Text    string    `json:"text"`
	IsError bool      `json:"is_error,omitempty"`
	At      time.Time `json:"-"`
}

func userMessage(text string, at time.Time) Message {
	return Message{Role: RoleUser, Text: text, At: at}
}

func modelMessage(text string, isError bool, at time.Time) Message {
	return Message{Role: RoleModel, Text: text, IsError: isError, At: at}
}

// Transcript is the ordered list of turns of one session.
type Transcript []Message

// Last returns the most recent turn and false when the transcript is empty.
func (t Transcript) Last() (Message, bool) {
	if len(t) == 0 {
		return Message{}, false
	}
	return t[len(t)-1], true
}
