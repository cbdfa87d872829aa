package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/pkg/a11y"
	"github.com/vittin/site/pkg/i18n"
)

// Chat widget element ids.
const (
	ChatPanelID = "chat-panel"
	ChatLogID   = "chat-log"
	ChatInputID = "chat-input"
)

// ChatWidgetOptions configures the floating chat widget.
type ChatWidgetOptions struct {
	// SessionID binds this page load to one chat session
	SessionID string
	// Online is false when no API credential is configured
	Online bool
	// Endpoint receives JSON posts; WSEndpoint upgrades to a websocket
	Endpoint   string
	WSEndpoint string
	// MaxLength is the maxlength of the message input
	MaxLength int
	// Messages are rendered after the greeting
	Messages []chat.Message
}

// RenderChatMessage renders one transcript bubble.
func RenderChatMessage(m chat.Message) string {
	class := "chat-msg " + string(m.Role)
	if m.IsError {
		class += " error"
	}
	return fmt.Sprintf(`<div class="%s" data-role="%s">%s</div>`, class, html.EscapeString(string(m.Role)), html.EscapeString(m.Text))
}

// RenderChatWidget generates the toggle button and the (initially hidden) chat panel.
func RenderChatWidget(t *i18n.Translator, opts ChatWidgetOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<aside class="chat" data-chat data-session-id="%s" data-endpoint="%s" data-ws-endpoint="%s" data-online="%t" %s>`,
		html.EscapeString(opts.SessionID), html.EscapeString(opts.Endpoint), html.EscapeString(opts.WSEndpoint),
		opts.Online, a11y.AriaLabel(t.T("chat.title"))))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<div id="%s" class="chat-panel" role="dialog" aria-labelledby="chat-title" hidden>`, ChatPanelID))
	sb.WriteString("\n")

	// Header
	status, statusClass := t.T("chat.online"), "chat-status"
	if !opts.Online {
		status, statusClass = t.T("chat.offline"), "chat-status offline"
	}
	sb.WriteString(`<div class="chat-header">`)
	sb.WriteString(fmt.Sprintf(`<h2 id="chat-title">%s%s</h2>`, Icon("bot", ""), html.EscapeString(t.T("chat.title"))))
	sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, statusClass, html.EscapeString(status)))
	sb.WriteString(fmt.Sprintf(`<button type="button" class="icon-btn" data-chat-close %s>%s</button>`, a11y.AriaLabel(t.T("chat.close")), Icon("x", "")))
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	// Transcript
	region := a11y.NewLiveRegion(ChatLogID, a11y.WithClass("chat-log"), a11y.WithLabel(t.T("chat.log")))
	sb.WriteString(region.Open())
	sb.WriteString(RenderChatMessage(chat.Message{Role: chat.RoleModel, Text: t.T("chat.greeting")}))
	for _, m := range opts.Messages {
		sb.WriteString(RenderChatMessage(m))
	}
	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="chat-typing" data-chat-typing hidden>%s</div>`, html.EscapeString(t.T("chat.typing"))))
	sb.WriteString("\n")

	// Input
	maxAttr := ""
	if opts.MaxLength > 0 {
		maxAttr = fmt.Sprintf(` maxlength="%d"`, opts.MaxLength)
	}
	sb.WriteString(`<form class="chat-form" data-chat-form>`)
	sb.WriteString(fmt.Sprintf(`<label for="%s" class="sr-only">%s</label>`, ChatInputID, html.EscapeString(t.T("chat.input_label"))))
	sb.WriteString(fmt.Sprintf(`<input id="%s" type="text" name="message" autocomplete="off" required%s placeholder="%s">`,
		ChatInputID, maxAttr, html.EscapeString(t.T("chat.placeholder"))))
	sb.WriteString(fmt.Sprintf(`<button type="submit" %s>%s</button>`, a11y.AriaLabel(t.T("chat.send")), Icon("send", "")))
	sb.WriteString(`</form>`)
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<button type="button" class="chat-toggle" data-chat-toggle %s %s %s data-label-open="%s" data-label-close="%s">%s</button>`,
		a11y.AriaControls(ChatPanelID), a11y.AriaExpanded(false), a11y.AriaLabel(t.T("chat.open")),
		html.EscapeString(t.T("chat.open")), html.EscapeString(t.T("chat.close")), Icon("message-circle", "")))
	sb.WriteString("\n")
	sb.WriteString(`</aside>`)
	sb.WriteString("\n")

	return sb.String()
}
