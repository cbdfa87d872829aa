package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/a11y"
	"github.com/vittin/site/pkg/i18n"
)

// RenderThemes generates the themes band. It has no id: it is not a nav target.
func RenderThemes(t *i18n.Translator, themes []content.Theme) string {
	var sb strings.Builder

	sb.WriteString(`<section class="section themes" aria-labelledby="themes-title">`)
	sb.WriteString("\n")
	sb.WriteString(`<div class="container">`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="section-head"><h2 id="themes-title">%s</h2><p>%s</p></div>`,
		html.EscapeString(t.T("themes.title")), html.EscapeString(t.T("themes.text"))))
	sb.WriteString("\n")

	sb.WriteString(`<ul class="theme-grid">`)
	sb.WriteString("\n")
	for _, theme := range themes {
		sb.WriteString(fmt.Sprintf(`<li class="theme-card">%s<h3>%s</h3><p>%s</p></li>`,
			Icon(theme.Icon, ""), html.EscapeString(theme.Name), html.EscapeString(theme.Description)))
		sb.WriteString("\n")
	}
	sb.WriteString(`</ul>`)
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</section>`)
	sb.WriteString("\n")

	return sb.String()
}

// RenderVideoCard renders one video: thumbnail with badges and play overlay, title, description and views.
func RenderVideoCard(t *i18n.Translator, v content.Video, channelURL string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<article class="video-card" data-video-id="%s">`, html.EscapeString(v.ID)))
	sb.WriteString(fmt.Sprintf(`<a href="%s" class="video-thumb" target="_blank" rel="noopener noreferrer" %s>`,
		html.EscapeString(channelURL), a11y.AriaLabel(t.T("videos.watch", v.Title))))
	sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy" width="640" height="360">`,
		html.EscapeString(v.Thumbnail), html.EscapeString(v.Title)))
	sb.WriteString(`<span class="video-play" aria-hidden="true"><span>` + Icon("play", "") + `</span></span>`)
	sb.WriteString(fmt.Sprintf(`<span class="video-duration">%s</span>`, html.EscapeString(v.Duration)))
	sb.WriteString(fmt.Sprintf(`<span class="video-category">%s</span>`, html.EscapeString(v.Category)))
	sb.WriteString(`</a>`)
	sb.WriteString(fmt.Sprintf(`<h3>%s</h3>`, html.EscapeString(v.Title)))
	sb.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(v.Description)))
	sb.WriteString(fmt.Sprintf(`<span class="video-views">%s</span>`, html.EscapeString(t.T("videos.views", v.Views))))
	sb.WriteString(`</article>`)
	sb.WriteString("\n")

	return sb.String()
}

// RenderVideos generates the latest-videos section, the target of "Séries".
func RenderVideos(t *i18n.Translator, videos []content.Video, channelURL string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<section id="%s" class="section" aria-labelledby="videos-title">`, website.SectionSeries.ID()))
	sb.WriteString("\n")
	sb.WriteString(`<div class="container">`)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<div class="section-head"><h2 id="videos-title">%s</h2><a href="%s" class="channel-link" target="_blank" rel="noopener noreferrer">%s %s</a></div>`,
		html.EscapeString(t.T("videos.title")), html.EscapeString(channelURL),
		html.EscapeString(t.T("videos.channel")), Icon("chevron-right", "")))
	sb.WriteString("\n")

	sb.WriteString(`<div class="video-grid">`)
	sb.WriteString("\n")
	for _, v := range videos {
		sb.WriteString(RenderVideoCard(t, v, channelURL))
	}
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</section>`)
	sb.WriteString("\n")

	return sb.String()
}

// RenderAbout generates the creator section.
func RenderAbout(t *i18n.Translator, items []content.AboutItem) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<section id="%s" class="section" aria-labelledby="about-title">`, website.SectionAbout.ID()))
	sb.WriteString("\n")
	sb.WriteString(`<div class="container about-grid">`)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(`<div class="about-image"><img src="%s" alt="%s" loading="lazy" width="800" height="1000"></div>`,
		html.EscapeString(website.CreatorURL), html.EscapeString(t.T("about.image_alt"))))
	sb.WriteString("\n")

	sb.WriteString(`<div>`)
	sb.WriteString(fmt.Sprintf(`<h2 id="about-title">%s <span class="accent">.</span></h2>`, html.EscapeString(t.T("about.title"))))
	sb.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(t.T("about.text"))))
	sb.WriteString("\n")
	sb.WriteString(`<ul class="about-list">`)
	for _, item := range items {
		sb.WriteString(fmt.Sprintf(`<li><strong>%s</strong><span>%s</span></li>`,
			html.EscapeString(item.Title), html.EscapeString(item.Description)))
	}
	sb.WriteString(`</ul>`)
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	sb.WriteString(`</div>`)
	sb.WriteString("\n")
	sb.WriteString(`</section>`)
	sb.WriteString("\n")

	return sb.String()
}
