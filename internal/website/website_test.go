package website

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Séries", "series"},
		{"Sobre", "sobre"},
		{"Recursos", "recursos"},
		{"Últimos Vídeos", "ultimos-videos"},
		{"  Ciência • Engenharia  ", "ciencia-engenharia"},
		{"Paleonto & Mecânica!", "paleonto-mecanica"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "Slug(%q)", tt.in)
	}
}

func TestNavSections_IDs(t *testing.T) {
	var ids []string
	for _, s := range NavSections() {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []string{"series", "sobre", "recursos"}, ids)
}

func TestParticles_Deterministic(t *testing.T) {
	a := Particles(7, ParticleCount)
	b := Particles(7, ParticleCount)
	c := Particles(8, ParticleCount)

	require.Len(t, a, ParticleCount)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	for _, p := range a {
		assert.True(t, p.Size >= 1 && p.Size < 4, "size %v", p.Size)
		assert.True(t, p.X >= 0 && p.X < 100)
		assert.True(t, p.Y >= 0 && p.Y < 100)
		assert.True(t, p.Duration >= 10 && p.Duration < 20)
		assert.True(t, p.Delay >= 0 && p.Delay < 5)
		assert.True(t, p.Opacity >= 0.1 && p.Opacity < 0.5)
	}
}

func TestRenderStyles_StableOrder(t *testing.T) {
	a := RenderStyles()
	assert.Equal(t, a, RenderStyles())
	assert.Contains(t, a, "--color-bg:#264039")
	assert.Contains(t, a, ".chat-panel")

	custom := RenderStyles(WithCustomColors(map[string]string{"orange": "#000000"}), WithReset(false), WithAnimations(false))
	assert.Contains(t, custom, "--color-orange:#000000")
	assert.NotContains(t, custom, "@keyframes")
	assert.NotContains(t, custom, "box-sizing:border-box;margin:0")
}

func TestRenderDocument(t *testing.T) {
	cfg := DefaultPageConfig(`VITTIN <"&">`, "Descrição", "", "https://vittin.example/")
	doc := RenderDocument(cfg, ".x{}", "<main></main>")

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<html lang="pt-BR">`)
	assert.Contains(t, doc, "<title>VITTIN &lt;&#34;&amp;&#34;&gt;</title>")
	assert.Contains(t, doc, `<meta property="og:locale" content="pt_BR">`)
	assert.Contains(t, doc, `"@type": "Organization"`)
	assert.Contains(t, doc, ".x{}")
	assert.NotContains(t, doc, `<"&">`)
}

func TestRenderDocument_English(t *testing.T) {
	doc := RenderDocument(DefaultPageConfig("VITTIN", "Science", LocaleEN, ""), "", "")

	assert.Contains(t, doc, `<html lang="en">`)
	assert.Contains(t, doc, `<meta property="og:locale" content="en">`)
}

func TestBundle_Catalogs(t *testing.T) {
	b := NewBundle()
	assert.Equal(t, []string{LocalePT, LocaleEN}, b.Locales())

	pt := b.Translator(LocalePT)
	enT := b.Translator(LocaleEN)
	assert.Equal(t, "Séries", pt.T("nav.series"))
	assert.Equal(t, "Series", enT.T("nav.series"))
	assert.Equal(t, "250K views", enT.T("videos.views", "250K"))

	// Every key has both translations.
	for key := range ptBR {
		_, ok := en[key]
		assert.True(t, ok, "missing en translation for %q", key)
	}
	assert.Len(t, en, len(ptBR))
}
