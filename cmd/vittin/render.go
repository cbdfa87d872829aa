package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/server"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/internal/website/landing"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the page as static HTML",
		Long: `render writes the complete page to a file or stdout. The chat widget is
rendered offline-capable; a static copy still needs the serve command for
/api/chat and /newsletter to answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.renderPage(lang)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = io.WriteString(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.logger.Info("page written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&lang, "lang", "", "page language (pt-BR, en); default site.locale")
	return cmd
}

// renderPage renders the page with the configured content and locale.
func (a *app) renderPage(lang string) (string, error) {
	catalog := content.Default()
	if a.cfg.Content.File != "" {
		c, err := content.LoadFile(a.cfg.Content.File)
		if err != nil {
			return "", err
		}
		catalog = c
	}

	bundle := website.NewBundle()
	if lang == "" {
		lang = a.cfg.Site.Locale
	}
	locale := bundle.Negotiate(lang, "")

	return landing.Render(landing.Options{
		Translator:       bundle.Translator(locale),
		Catalog:          catalog,
		BaseURL:          a.cfg.Site.BaseURL,
		Year:             a.cfg.Site.Year,
		ChatOnline:       a.cfg.ChatEnabled(),
		MaxMessageLength: a.cfg.Chat.MaxMessageLength,
		Seed:             server.DefaultSeed,
	}), nil
}
