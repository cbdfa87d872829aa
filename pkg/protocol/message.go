// Package protocol defines the frames exchanged over the chat websocket.
package protocol

import (
	"fmt"
	"strings"
)

// FrameType identifies the kind of chat frame.
type FrameType string

const (
	// FrameMessage carries a user question, client to server.
	FrameMessage FrameType = "message"
	// FrameReply carries the assistant turn, server to client.
	FrameReply FrameType = "reply"
	// FrameError reports a rejected frame, server to client.
	FrameError FrameType = "error"
)

// Turn is one chat turn as sent to the browser.
type Turn struct {
	Role    string `json:"role" msgpack:"role"`
	Text    string `json:"text" msgpack:"text"`
	IsError bool   `json:"is_error,omitempty" msgpack:"is_error,omitempty"`
}

// Frame is the envelope of every websocket message.
type Frame struct {
	Type      FrameType `json:"type" msgpack:"type"`
	SessionID string    `json:"session_id,omitempty" msgpack:"session_id,omitempty"`
	Text      string    `json:"text,omitempty" msgpack:"text,omitempty"`
	Message   *Turn     `json:"message,omitempty" msgpack:"message,omitempty"`
	Error     string    `json:"error,omitempty" msgpack:"error,omitempty"`
}

// NewReply wraps a turn in a reply frame for the given session. The session
// id lets a client that connected without one keep using the minted id.
func NewReply(sessionID string, t Turn) *Frame {
	return &Frame{Type: FrameReply, SessionID: sessionID, Message: &t}
}

// NewError builds an error frame.
func NewError(format string, args ...any) *Frame {
	return &Frame{Type: FrameError, Error: fmt.Sprintf(format, args...)}
}

// Validate checks that an inbound frame is a non-blank user message.
func (f *Frame) Validate() error {
	if f.Type != FrameMessage {
		return fmt.Errorf("%w: unexpected frame type %q", ErrInvalidMessage, f.Type)
	}
	if strings.TrimSpace(f.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidMessage)
	}
	return nil
}
