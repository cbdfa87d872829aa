package components

import (
	"fmt"
	"strings"

	"github.com/vittin/site/internal/website"
)

// RenderBackground generates the fixed decorative layer: blobs, particles, grain and vignette.
func RenderBackground(seed uint64) string {
	var sb strings.Builder

	sb.WriteString(`<div class="fluid-bg" aria-hidden="true">`)
	sb.WriteString("\n")
	for _, b := range website.Blobs() {
		sb.WriteString(fmt.Sprintf(`<div class="%s"></div>`, b.Class))
	}
	sb.WriteString("\n")
	for _, p := range website.Particles(seed, website.ParticleCount) {
		sb.WriteString(fmt.Sprintf(`<span class="particle" style="width:%.2fpx;height:%.2fpx;left:%.2f%%;top:%.2f%%;--o:%.2f;animation-duration:%.2fs;animation-delay:%.2fs"></span>`,
			p.Size, p.Size, p.X, p.Y, p.Opacity, p.Duration, p.Delay))
	}
	sb.WriteString("\n")
	sb.WriteString(`<div class="grain"></div><div class="vignette"></div>`)
	sb.WriteString("\n")
	sb.WriteString(`</div>`)
	sb.WriteString("\n")

	return sb.String()
}
