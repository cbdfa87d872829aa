package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/i18n"
)

// Newsletter form element ids.
const (
	NewsletterInputID  = "newsletter-email"
	NewsletterStatusID = "newsletter-status"
)

// NewsletterOptions configures the resources section.
type NewsletterOptions struct {
	// Action is the form endpoint
	Action string
	// MaxLength is the maxlength of the email input
	MaxLength int
	// Resources are the tiles under the form
	Resources []content.Resource
}

// RenderNewsletter generates the resources section: bulletin signup and resource tiles.
func RenderNewsletter(t *i18n.Translator, opts NewsletterOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<section id="%s" class="section" aria-labelledby="newsletter-title">`, website.SectionResources.ID()))
	sb.WriteString("\n")
	sb.WriteString(`<div class="container">`)
	sb.WriteString("\n")

	sb.WriteString(`<div class="newsletter">`)
	sb.WriteString(Icon("mail", ""))
	sb.WriteString(fmt.Sprintf(`<h2 id="newsletter-title">%s</h2>`, html.EscapeString(t.T("newsletter.title"))))
	sb.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(t.T("newsletter.text"))))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<form class="newsletter-form" action="%s" method="post" data-newsletter novalidate>`, html.EscapeString(opts.Action)))
	sb.WriteString(fmt.Sprintf(`<label for="%s" class="sr-only">%s</label>`, NewsletterInputID, html.EscapeString(t.T("newsletter.label"))))
	maxAttr := ""
	if opts.MaxLength > 0 {
		maxAttr = fmt.Sprintf(` maxlength="%d"`, opts.MaxLength)
	}
	sb.WriteString(fmt.Sprintf(`<input id="%s" type="email" name="email" autocomplete="email" required%s placeholder="%s">`,
		NewsletterInputID, maxAttr, html.EscapeString(t.T("newsletter.placeholder"))))
	sb.WriteString(fmt.Sprintf(`<button type="submit" class="btn btn-primary">%s</button>`, html.EscapeString(t.T("newsletter.submit"))))
	sb.WriteString(`</form>`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div id="%s" class="form-status" role="status" aria-live="polite"></div>`, NewsletterStatusID))
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	if len(opts.Resources) > 0 {
		sb.WriteString(fmt.Sprintf(`<ul class="resource-grid" aria-label="%s">`, html.EscapeString(t.T("resources.title"))))
		for _, r := range opts.Resources {
			sb.WriteString(fmt.Sprintf(`<li class="resource-tile">%s<span>%s</span></li>`, Icon(r.Icon, ""), html.EscapeString(r.Label)))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString("\n")
	}

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</section>`)
	sb.WriteString("\n")

	return sb.String()
}
