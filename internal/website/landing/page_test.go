package landing

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittin/site/internal/content"
	"github.com/vittin/site/internal/website"
	"github.com/vittin/site/pkg/a11y"
	"github.com/vittin/site/pkg/i18n"
)

var (
	hrefRe = regexp.MustCompile(`href="#([^"]+)"`)
	idRe   = regexp.MustCompile(` id="([^"]+)"`)
)

func TestRender_PassesAudit(t *testing.T) {
	page := Render(Options{SessionID: "s-1", ChatOnline: true, ShowHologram: true})

	report, err := a11y.Audit(strings.NewReader(page))
	require.NoError(t, err)
	assert.True(t, report.OK(), "audit issues: %v", report.Issues)
}

func TestRender_AnchorsHaveTargets(t *testing.T) {
	page := Render(Options{})

	ids := map[string]bool{}
	for _, m := range idRe.FindAllStringSubmatch(page, -1) {
		ids[m[1]] = true
	}
	for _, m := range hrefRe.FindAllStringSubmatch(page, -1) {
		assert.True(t, ids[m[1]], "anchor #%s has no target", m[1])
	}
	for _, s := range website.NavSections() {
		assert.True(t, ids[s.ID()], "section %q missing", s.ID())
	}
	assert.True(t, ids["main-content"])
}

func TestRender_EscapesCatalog(t *testing.T) {
	c := content.Default()
	c.LatestVideo = `<img src=x onerror=alert(1)>`
	c.Videos[0].Title = `"><script>alert(1)</script>`
	c.Themes[0].Description = "Engrenagens & <Motores>"

	page := Render(Options{Catalog: c})

	assert.NotContains(t, page, "<script>alert(1)")
	assert.NotContains(t, page, "<img src=x")
	assert.Contains(t, page, "Engrenagens &amp; &lt;Motores&gt;")
}

func TestRender_Content(t *testing.T) {
	page := Render(Options{Year: 2030, SessionID: "abc", MaxMessageLength: 500})

	for _, want := range []string{
		"Ciência • Engenharia • História",
		"DA TERRA",
		"Últimos Vídeos",
		"O CRIADOR",
		"BOLETIM CIENTÍFICO",
		"Seu melhor e-mail",
		"© 2030 VITTIN.",
		`data-session-id="abc"`,
		`maxlength="500"`,
		`maxlength="254"`,
		`<script src="/assets/vittin.js" defer></script>`,
	} {
		assert.Contains(t, page, want)
	}
	for _, v := range content.Default().Videos {
		assert.Contains(t, page, v.Title)
	}
	assert.Equal(t, 1, strings.Count(page, "<h1"))
}

func TestPage_UsesContextTranslator(t *testing.T) {
	en := website.NewBundle().Translator(website.LocaleEN)
	ctx := i18n.WithTranslator(context.Background(), en)

	var buf bytes.Buffer
	require.NoError(t, Page(Options{}).Render(ctx, &buf))

	assert.Contains(t, buf.String(), `<html lang="en">`)
	assert.Contains(t, buf.String(), "FROM EARTH")
	assert.Contains(t, buf.String(), `href="#series"`)
}
