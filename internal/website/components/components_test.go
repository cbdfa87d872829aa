package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vittin/site/internal/chat"
	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/i18n"
)

func pt() *i18n.Translator { return website.NewBundle().Translator(website.LocalePT) }

func TestIcon(t *testing.T) {
	svg := Icon("hammer", "big")
	assert.Contains(t, svg, `class="big"`)
	assert.Contains(t, svg, `aria-hidden="true"`)
	assert.Contains(t, svg, `fill="none"`)

	assert.Contains(t, Icon("play", ""), `fill="currentColor"`)
	assert.Equal(t, Icon("globe", ""), Icon("unknown", ""))

	for _, theme := range content.Default().Themes {
		assert.True(t, HasIcon(theme.Icon), "theme icon %q", theme.Icon)
	}
}

func TestNavbar_AnchorsMatchSections(t *testing.T) {
	out := RenderNavbar(pt(), NavbarOptions{Sections: website.NavSections(), SubscribeURL: website.ChannelURL})

	for _, s := range website.NavSections() {
		assert.Contains(t, out, `href="#`+s.ID()+`"`)
	}
	assert.Contains(t, out, ">Séries<")
	assert.Contains(t, out, "Assinar no YouTube")
	assert.Contains(t, out, `aria-expanded="false"`)
	assert.Contains(t, out, `class="skip-link"`)
}

func TestVideoCard_Escapes(t *testing.T) {
	v := content.Video{
		ID:          "x",
		Title:       `<script>alert("x")</script>`,
		Category:    "A&B",
		Thumbnail:   `https://img.example/a.jpg?x="1"`,
		Views:       "1K",
		Duration:    "1:00",
		Description: "<b>bold</b>",
	}
	out := RenderVideoCard(pt(), v, website.ChannelURL)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "A&amp;B")
	assert.Contains(t, out, "1K views")
	assert.Contains(t, out, `class="video-duration">1:00<`)
}

func TestSections_IDs(t *testing.T) {
	tr := pt()
	c := content.Default()

	assert.Contains(t, RenderVideos(tr, c.Videos, website.ChannelURL), `id="series"`)
	assert.Contains(t, RenderAbout(tr, c.About), `id="sobre"`)
	assert.Contains(t, RenderNewsletter(tr, NewsletterOptions{Action: "/newsletter"}), `id="recursos"`)
	assert.NotContains(t, RenderThemes(tr, c.Themes), `<section id=`)
}

func TestThemes_RendersAll(t *testing.T) {
	c := content.Default()
	out := RenderThemes(pt(), c.Themes)
	assert.Equal(t, len(c.Themes), strings.Count(out, `class="theme-card"`))
}

func TestHero(t *testing.T) {
	out := RenderHero(pt(), HeroOptions{LatestVideo: "Pontes <Romanas>", SubscribeURL: website.ChannelURL, SeriesID: "series"})
	assert.Contains(t, out, `<header id="hero"`)
	assert.Contains(t, out, "Pontes &lt;Romanas&gt;")
	assert.Contains(t, out, `alt="Vittin Apresentador"`)
	assert.Contains(t, out, `href="#series"`)
	assert.NotContains(t, out, HologramURL)
	assert.Equal(t, 1, strings.Count(out, "<h1"))
}

func TestFooter(t *testing.T) {
	out := RenderFooter(pt(), FooterOptions{Year: 2031, Social: website.DefaultSocialLinks()})
	assert.Contains(t, out, "© 2031 VITTIN.")
	assert.Contains(t, out, `aria-label="Instagram"`)
	assert.Equal(t, 3, strings.Count(out, `rel="noopener noreferrer"`))
}

func TestBackground(t *testing.T) {
	out := RenderBackground(42)
	assert.Equal(t, website.ParticleCount, strings.Count(out, `class="particle"`))
	assert.Equal(t, 3, strings.Count(out, `class="blob `))
	assert.Equal(t, out, RenderBackground(42))
	assert.Regexp(t, regexp.MustCompile(`animation-duration:1\d\.\d\ds`), out)
}

func TestChatWidget(t *testing.T) {
	out := RenderChatWidget(pt(), ChatWidgetOptions{
		SessionID: `abc"def`,
		Online:    false,
		Endpoint:  website.ChatPath,
		MaxLength: 1000,
		Messages: []chat.Message{
			{Role: chat.RoleUser, Text: "<oi>"},
			{Role: chat.RoleModel, Text: chat.OfflineReply, IsError: true},
		},
	})

	assert.Contains(t, out, `data-session-id="abc&#34;def"`)
	assert.Contains(t, out, `data-online="false"`)
	assert.Contains(t, out, "Offline")
	assert.Contains(t, out, `role="log"`)
	assert.Contains(t, out, `<label for="chat-input"`)
	assert.Contains(t, out, `maxlength="1000"`)
	assert.Contains(t, out, "&lt;oi&gt;")
	assert.Contains(t, out, `class="chat-msg model error"`)
	assert.Contains(t, out, "VITTIN BOT 🤖")
	assert.Contains(t, out, "hidden>")
}
