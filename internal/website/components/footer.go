package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/i18n"
)

// FooterOptions configures the footer component.
type FooterOptions struct {
	// Year is shown in the copyright line
	Year int
	// Social are the icon links on the right
	Social []website.SocialLink
}

// RenderFooter generates the page footer.
func RenderFooter(t *i18n.Translator, opts FooterOptions) string {
	var sb strings.Builder

	sb.WriteString(`<footer class="footer">`)
	sb.WriteString("\n")
	sb.WriteString(`<div class="container footer-inner">`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<div class="logo"><img src="%s" alt="VITTIN Logo" width="40" height="40"><span>%s</span></div>`,
		html.EscapeString(website.LogoURL), website.BrandName))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<p>%s<br>%s</p>`,
		html.EscapeString(t.T("footer.copyright", opts.Year)), html.EscapeString(t.T("footer.rights"))))
	sb.WriteString("\n")

	if len(opts.Social) > 0 {
		sb.WriteString(fmt.Sprintf(`<ul class="social" aria-label="%s">`, html.EscapeString(t.T("footer.social"))))
		for _, link := range opts.Social {
			sb.WriteString(fmt.Sprintf(`<li><a href="%s" target="_blank" rel="noopener noreferrer" aria-label="%s">%s</a></li>`,
				html.EscapeString(link.URL), html.EscapeString(link.Name), Icon(link.Icon, "")))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString("\n")
	}

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</footer>`)
	sb.WriteString("\n")

	return sb.String()
}
