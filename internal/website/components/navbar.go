package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/a11y"
	"github.com/vittin/site/pkg/i18n"
)

// MobileMenuID is the id of the full-screen menu toggled on small screens.
const MobileMenuID = "mobile-menu"

// NavbarOptions configures the navbar component.
type NavbarOptions struct {
	// Sections are the in-page destinations, in order
	Sections []website.Section
	// SubscribeURL is the channel link behind "Assinar"
	SubscribeURL string
}

// NavLinks resolves the section buttons to labelled in-page links.
func NavLinks(t *i18n.Translator, sections []website.Section) []website.NavLink {
	links := make([]website.NavLink, 0, len(sections))
	for _, s := range sections {
		links = append(links, website.NavLink{Label: t.T(s.Key), URL: "#" + s.ID()})
	}
	return links
}

// RenderNavbar generates the skip link, the fixed navigation bar and the mobile overlay.
func RenderNavbar(t *i18n.Translator, opts NavbarOptions) string {
	var sb strings.Builder
	links := NavLinks(t, opts.Sections)

	sb.WriteString(a11y.SkipLink("main-content", t.T("skip")))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<nav class="nav" data-nav %s>`, a11y.AriaLabel(t.T("nav.main"))))
	sb.WriteString("\n")
	sb.WriteString(`<div class="container nav-inner">`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<a href="#hero" class="logo" data-scroll-top %s><img src="%s" alt="VITTIN Logo" width="40" height="40"><span>%s</span></a>`,
		a11y.AriaLabel(t.T("nav.home")), html.EscapeString(website.LogoURL), website.BrandName))
	sb.WriteString("\n")

	sb.WriteString(`<div class="nav-links">`)
	sb.WriteString("\n")
	for _, link := range links {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="nav-link" data-scroll="%s">%s</a>`,
			html.EscapeString(link.URL), html.EscapeString(strings.TrimPrefix(link.URL, "#")), html.EscapeString(link.Label)))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf(`<a href="%s" class="btn btn-primary btn-sm" target="_blank" rel="noopener noreferrer">%s</a>`,
		html.EscapeString(opts.SubscribeURL), html.EscapeString(t.T("nav.subscribe"))))
	sb.WriteString("\n")
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<button type="button" class="icon-btn menu-toggle" data-menu-toggle %s %s %s data-label-open="%s" data-label-close="%s">%s%s</button>`,
		a11y.AriaControls(MobileMenuID), a11y.AriaExpanded(false), a11y.AriaLabel(t.T("nav.menu_open")),
		html.EscapeString(t.T("nav.menu_open")), html.EscapeString(t.T("nav.menu_close")),
		Icon("menu", "icon-open"), Icon("x", "icon-close")))
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</nav>`)
	sb.WriteString("\n")

	// Mobile overlay
	sb.WriteString(fmt.Sprintf(`<div id="%s" class="mobile-menu" %s>`, MobileMenuID, a11y.AriaLabel(t.T("nav.main"))))
	sb.WriteString("\n")
	for _, link := range links {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="nav-link" data-scroll="%s">%s</a>`,
			html.EscapeString(link.URL), html.EscapeString(strings.TrimPrefix(link.URL, "#")), html.EscapeString(link.Label)))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf(`<a href="%s" class="btn btn-primary" target="_blank" rel="noopener noreferrer">%s</a>`,
		html.EscapeString(opts.SubscribeURL), html.EscapeString(t.T("nav.subscribe_youtube"))))
	sb.WriteString("\n")
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	return sb.String()
}
