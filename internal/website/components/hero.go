package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/i18n"
)

// HologramURL is the optional decorative icon floating over the orbits.
const HologramURL = "https://cdn-icons-png.flaticon.com/512/2103/2103633.png"

// HeroOptions configures the hero section.
type HeroOptions struct {
	// LatestVideo is the text of the "Último Vídeo" badge
	LatestVideo string
	// SubscribeURL is the target of the primary CTA
	SubscribeURL string
	// SeriesID is the section the secondary CTA scrolls to
	SeriesID string
	// ShowHologram renders the decorative hologram icon
	ShowHologram bool
}

// RenderHero generates the hero header: badge, title, subtitle, CTAs and the visual column.
func RenderHero(t *i18n.Translator, opts HeroOptions) string {
	var sb strings.Builder

	sb.WriteString(`<header id="hero" class="hero" aria-labelledby="hero-title">`)
	sb.WriteString("\n")
	sb.WriteString(`<div class="container hero-grid">`)
	sb.WriteString("\n")

	// Copy
	sb.WriteString(`<div>`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<span class="hero-badge">%s</span>`, html.EscapeString(t.T("hero.badge"))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<h1 id="hero-title" class="hero-title"><span>%s</span><span class="accent">%s</span><span class="outline">%s</span></h1>`,
		html.EscapeString(t.T("hero.title_1")),
		html.EscapeString(t.T("hero.title_2")),
		html.EscapeString(t.T("hero.title_3"))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<p class="hero-subtitle">%s</p>`, html.EscapeString(t.T("hero.subtitle"))))
	sb.WriteString("\n")

	sb.WriteString(`<div class="hero-actions">`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<a href="%s" class="btn btn-primary" target="_blank" rel="noopener noreferrer">%s %s</a>`,
		html.EscapeString(opts.SubscribeURL), Icon("youtube", ""), html.EscapeString(t.T("hero.cta_subscribe"))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<a href="#%s" class="btn btn-secondary" data-scroll="%s">%s</a>`,
		html.EscapeString(opts.SeriesID), html.EscapeString(opts.SeriesID), html.EscapeString(t.T("hero.cta_series"))))
	sb.WriteString("\n")
	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	// Visual
	sb.WriteString(`<div class="hero-visual">`)
	sb.WriteString("\n")
	sb.WriteString(`<div class="orbit orbit-outer" aria-hidden="true"></div>`)
	sb.WriteString(`<div class="orbit orbit-inner" aria-hidden="true"></div>`)
	sb.WriteString("\n")
	if opts.ShowHologram {
		sb.WriteString(fmt.Sprintf(`<img class="hologram" src="%s" alt="" aria-hidden="true" loading="lazy">`, HologramURL))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf(`<div class="presenter"><img src="%s" alt="%s" width="600" height="600"></div>`,
		html.EscapeString(website.PresenterURL), html.EscapeString(t.T("hero.presenter_alt"))))
	sb.WriteString("\n")
	if opts.LatestVideo != "" {
		sb.WriteString(fmt.Sprintf(`<div class="latest-badge"><small>%s</small><strong>%s</strong></div>`,
			html.EscapeString(t.T("hero.latest")), html.EscapeString(opts.LatestVideo)))
		sb.WriteString("\n")
	}
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="scroll-hint" aria-hidden="true">%s</div>`, html.EscapeString(t.T("hero.scroll"))))
	sb.WriteString("\n")
	sb.WriteString(`</header>`)
	sb.WriteString("\n")

	return sb.String()
}
