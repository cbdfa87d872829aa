// Package landing composes the VITTIN page from its components.
package landing

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/newsletter"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/internal/website/components"
	"github.com/vittin/site/pkg/i18n"
)

// Options carries everything that varies between two renders of the page.
type Options struct {
	// Translator selects the chrome language; nil uses the one in the
	// render context, then the default bundle.
	Translator *i18n.Translator
	// Catalog is the page content; nil uses content.Default().
	Catalog *content.Catalog
	// BaseURL is the canonical URL
	BaseURL string
	// Year is shown in the footer
	Year int
	// SessionID is embedded in the chat widget
	SessionID string
	// ChatOnline reports whether an API credential is configured
	ChatOnline bool
	// MaxMessageLength limits the chat input
	MaxMessageLength int
	// Seed drives the background particles
	Seed uint64
	// ShowHologram renders the optional hero hologram
	ShowHologram bool
	// Transcript is rendered inside the chat panel after the greeting
	Transcript []chat.Message
}

// Page returns the page as a templ component, ready for templ.Handler.
func Page(opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if opts.Translator == nil {
			opts.Translator = i18n.TranslatorFromContext(ctx)
		}
		_, err := io.WriteString(w, Render(opts))
		return err
	})
}

// Render returns the complete HTML document.
func Render(opts Options) string {
	t := opts.Translator
	if t == nil {
		t = website.NewBundle().Translator(website.LocalePT)
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	year := opts.Year
	if year == 0 {
		year = 2024
	}

	cfg := website.DefaultPageConfig(t.T("page.title"), t.T("page.description"), t.Locale(), opts.BaseURL)

	var sb strings.Builder

	sb.WriteString(components.RenderBackground(opts.Seed))

	sb.WriteString(components.RenderNavbar(t, components.NavbarOptions{
		Sections:     website.NavSections(),
		SubscribeURL: website.ChannelURL,
	}))

	sb.WriteString(components.RenderHero(t, components.HeroOptions{
		LatestVideo:  catalog.LatestVideo,
		SubscribeURL: website.ChannelURL,
		SeriesID:     website.SectionSeries.ID(),
		ShowHologram: opts.ShowHologram,
	}))

	sb.WriteString(`<main id="main-content" class="page">`)
	sb.WriteString("\n")
	sb.WriteString(components.RenderThemes(t, catalog.Themes))
	sb.WriteString(components.RenderVideos(t, catalog.Videos, website.ChannelURL))
	sb.WriteString(components.RenderAbout(t, catalog.About))
	sb.WriteString(components.RenderNewsletter(t, components.NewsletterOptions{
		Action:    website.NewsletterURL,
		MaxLength: newsletter.MaxEmailLength,
		Resources: catalog.Resources,
	}))
	sb.WriteString(`</main>`)
	sb.WriteString("\n")

	sb.WriteString(components.RenderFooter(t, components.FooterOptions{
		Year:   year,
		Social: website.DefaultSocialLinks(),
	}))

	sb.WriteString(components.RenderChatWidget(t, components.ChatWidgetOptions{
		SessionID:  opts.SessionID,
		Online:     opts.ChatOnline,
		Endpoint:   website.ChatPath,
		WSEndpoint: website.ChatWSPath,
		MaxLength:  opts.MaxMessageLength,
		Messages:   opts.Transcript,
	}))

	sb.WriteString(`<script src="` + website.ScriptPath + `" defer></script>`)

	return website.RenderDocument(cfg, "", sb.String())
}
