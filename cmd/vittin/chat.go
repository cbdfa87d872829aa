package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vittin/site/internal/chat"
)

var (
	botStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f29849"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0392b"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#264039")).
			Padding(0, 2)
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to VITTIN BOT from the terminal",
		Long: `chat runs the same send flow as the page widget over stdin and stdout:
one session, one line per message. An empty line is ignored; /quit or EOF ends
the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.chatLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) chatLoop(ctx context.Context, in io.Reader, out io.Writer) error {
	service := a.chatService()
	registry := chat.NewRegistry(a.cfg.Chat.SessionTTL, 1)
	defer registry.Close()

	sess, err := registry.Get(chat.NewID())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("VITTIN BOT"))
	if !service.Online() {
		fmt.Fprintln(out, hintStyle.Render("offline: set VITTIN_CHAT_API_KEY or GEMINI_API_KEY"))
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "":
			continue
		case text == "/quit" || text == "/exit":
			return nil
		case utf8.RuneCountInString(text) > a.cfg.Chat.MaxMessageLength:
			fmt.Fprintln(out, errorStyle.Render(
				fmt.Sprintf("message longer than %d characters", a.cfg.Chat.MaxMessageLength)))
			continue
		}

		reply := service.Send(ctx, sess, text)
		style := botStyle
		if reply.IsError {
			style = errorStyle
		}
		fmt.Fprintln(out, style.Render(reply.Text))

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
