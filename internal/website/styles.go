package website

import (
	"fmt"
	"sort"
	"strings"
)

// Color palette of the brand ("Roots & Tech": earth greens with orange highlights).
var Colors = map[string]string{
	// Backgrounds
	"bg":     "#264039", // page background
	"bgAlt":  "#223832", // themes band
	"bgDeep": "#1a2e29", // footer, inputs

	// Text
	"text":      "#FFFFFF",
	"textMuted": "#D1D5DB",
	"textDim":   "#9CA3AF",

	// Brand
	"orange":     "#F29849",
	"orangeDark": "#D97D30",
	"peach":      "#F29F8D",
	"olive":      "#507306",
	"brown":      "#8C4C27",

	// Borders
	"border":      "rgba(255,255,255,0.1)",
	"borderLight": "rgba(255,255,255,0.2)",
}

// FontFamily uses the system stack; FontDisplay is for the uppercase headings.
var FontFamily = `system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif`
var FontDisplay = `'Arial Black', 'Helvetica Neue', Impact, system-ui, sans-serif`

// Breakpoints for responsive design (mobile-first: min-width)
var Breakpoints = map[string]string{
	"md": "768px",
	"lg": "1024px",
}

// StyleOption allows customizing the generated CSS
type StyleOption func(*styleConfig)

type styleConfig struct {
	customColors      map[string]string
	includeReset      bool
	includeAnimations bool
}

// WithCustomColors overrides default colors
func WithCustomColors(colors map[string]string) StyleOption {
	return func(cfg *styleConfig) {
		for k, v := range colors {
			cfg.customColors[k] = v
		}
	}
}

// WithReset includes a CSS reset
func WithReset(include bool) StyleOption {
	return func(cfg *styleConfig) {
		cfg.includeReset = include
	}
}

// WithAnimations includes animation definitions
func WithAnimations(include bool) StyleOption {
	return func(cfg *styleConfig) {
		cfg.includeAnimations = include
	}
}

// RenderStyles generates the complete CSS for the page.
func RenderStyles(opts ...StyleOption) string {
	cfg := &styleConfig{
		customColors:      make(map[string]string),
		includeReset:      true,
		includeAnimations: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	colors := make(map[string]string, len(Colors))
	for k, v := range Colors {
		colors[k] = v
	}
	for k, v := range cfg.customColors {
		colors[k] = v
	}

	var sb strings.Builder

	if cfg.includeReset {
		sb.WriteString(cssReset())
	}
	sb.WriteString(cssVariables(colors))
	sb.WriteString(cssBase())
	sb.WriteString(cssLayout())
	sb.WriteString(cssButtons())
	sb.WriteString(cssNav())
	sb.WriteString(cssHero())
	sb.WriteString(cssThemes())
	sb.WriteString(cssVideos())
	sb.WriteString(cssAbout())
	sb.WriteString(cssNewsletter())
	sb.WriteString(cssFooter())
	sb.WriteString(cssBackground())
	sb.WriteString(cssChat())
	if cfg.includeAnimations {
		sb.WriteString(cssAnimations())
	}
	sb.WriteString(cssAccessibility())
	sb.WriteString(cssResponsive())

	return sb.String()
}

func cssReset() string {
	return `
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{-webkit-text-size-adjust:100%;scroll-behavior:smooth}
body{line-height:1.6;-webkit-font-smoothing:antialiased;-moz-osx-font-smoothing:grayscale}
img,picture,video,svg{display:block;max-width:100%}
input,button,textarea{font:inherit}
a{color:inherit;text-decoration:none}
ul,ol{list-style:none}
`
}

// cssVariables emits the palette in sorted order so the stylesheet is stable.
func cssVariables(colors map[string]string) string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]string, 0, len(names))
	for _, name := range names {
		vars = append(vars, fmt.Sprintf("--color-%s:%s", name, colors[name]))
	}
	return fmt.Sprintf(":root{%s;--font-sans:%s;--font-display:%s}\n", strings.Join(vars, ";"), FontFamily, FontDisplay)
}

func cssBase() string {
	return `
body{font-family:var(--font-sans);background:var(--color-bg);color:var(--color-text);min-height:100vh;overflow-x:hidden}
::selection{background:var(--color-orange);color:var(--color-bg)}
h1,h2,h3{font-family:var(--font-display);text-transform:uppercase;letter-spacing:-0.01em;line-height:1}
h2{font-size:clamp(2.25rem,5vw,3.75rem)}
p{color:var(--color-textMuted)}
.accent{color:var(--color-orange)}
.outline{color:transparent;-webkit-text-stroke:2px var(--color-orange)}
`
}

func cssLayout() string {
	return `
.container{width:100%;max-width:1280px;margin:0 auto;padding:0 1.5rem}
.section{position:relative;z-index:10;padding:6rem 0}
.section-head{display:flex;flex-direction:column;gap:1rem;margin-bottom:3rem}
.page{position:relative;z-index:1}
`
}

func cssButtons() string {
	// 44px minimum tap target
	return `
.btn{display:inline-flex;align-items:center;justify-content:center;gap:0.5rem;padding:1rem 2rem;font-weight:700;border-radius:9999px;border:none;cursor:pointer;transition:all 0.2s ease;min-height:2.75rem}
.btn svg{width:1.25rem;height:1.25rem}
.btn-primary{background:var(--color-orange);color:var(--color-bg)}
.btn-primary:hover{background:var(--color-orangeDark);transform:translateY(-2px);box-shadow:0 10px 30px rgba(242,152,73,0.3)}
.btn-secondary{background:transparent;color:var(--color-text);border:1px solid var(--color-borderLight)}
.btn-secondary:hover{background:rgba(255,255,255,0.1)}
.btn-sm{padding:0.5rem 1.25rem;font-size:0.875rem}
.icon-btn{display:inline-flex;align-items:center;justify-content:center;width:2.75rem;height:2.75rem;border-radius:9999px;border:none;background:transparent;color:var(--color-text);cursor:pointer}
.icon-btn svg{width:1.5rem;height:1.5rem}
`
}

func cssNav() string {
	return `
.nav{position:fixed;top:0;left:0;right:0;z-index:50;padding:1.25rem 0;transition:background 0.3s ease,padding 0.3s ease}
.nav.scrolled{background:rgba(38,64,57,0.9);backdrop-filter:blur(12px);padding:0.75rem 0;border-bottom:1px solid var(--color-border)}
.nav-inner{display:flex;align-items:center;justify-content:space-between;gap:1rem}
.logo{display:flex;align-items:center;gap:0.75rem;font-family:var(--font-display);font-size:1.5rem;letter-spacing:0.1em;color:var(--color-text);background:none;border:none;cursor:pointer}
.logo img{width:2.5rem;height:2.5rem;object-fit:contain}
.nav-links{display:none;align-items:center;gap:2rem}
.nav-link{background:none;border:none;color:var(--color-textMuted);font-weight:600;font-size:0.875rem;letter-spacing:0.1em;text-transform:uppercase;cursor:pointer}
.nav-link:hover{color:var(--color-orange)}
.menu-toggle{display:inline-flex}
.menu-toggle .icon-close,.menu-toggle[aria-expanded="true"] .icon-open{display:none}
.menu-toggle[aria-expanded="true"] .icon-close{display:block}
.mobile-menu{position:fixed;inset:0;z-index:40;display:none;flex-direction:column;align-items:center;justify-content:center;gap:2rem;background:var(--color-bg)}
.mobile-menu.open{display:flex}
.mobile-menu .nav-link{font-family:var(--font-display);font-size:2rem;color:var(--color-text)}
`
}

func cssHero() string {
	return `
.hero{position:relative;z-index:10;min-height:100vh;display:flex;align-items:center;padding:7rem 0 4rem}
.hero-grid{display:grid;grid-template-columns:1fr;gap:3rem;align-items:center}
.hero-badge{display:inline-flex;padding:0.4rem 1rem;border-radius:9999px;border:1px solid rgba(242,152,73,0.3);background:rgba(242,152,73,0.1);color:var(--color-orange);font-size:0.75rem;font-weight:700;letter-spacing:0.2em;text-transform:uppercase;margin-bottom:1.5rem}
.hero-title{font-size:clamp(3rem,9vw,6.5rem);margin-bottom:1.5rem}
.hero-title span{display:block}
.hero-subtitle{font-size:1.125rem;max-width:36rem;margin-bottom:2rem}
.hero-actions{display:flex;flex-wrap:wrap;gap:1rem}
.hero-visual{position:relative;display:flex;align-items:center;justify-content:center;aspect-ratio:1}
.orbit{position:absolute;border-radius:50%;border:1px dashed rgba(242,152,73,0.3)}
.orbit-outer{inset:0;animation:spin 40s linear infinite}
.orbit-inner{inset:12%;border-style:solid;border-color:rgba(80,115,6,0.4);animation:spin 30s linear infinite reverse}
.hologram{position:absolute;top:8%;right:10%;width:4rem;opacity:0.7;animation:float 6s ease-in-out infinite}
.presenter{position:relative;width:70%;aspect-ratio:1;border-radius:50%;overflow:hidden;border:4px solid var(--color-orange);box-shadow:0 0 60px rgba(242,152,73,0.3)}
.presenter img{width:100%;height:100%;object-fit:cover}
.latest-badge{position:absolute;bottom:8%;left:0;display:flex;flex-direction:column;padding:0.75rem 1.25rem;border-radius:1rem;background:rgba(26,46,41,0.9);border:1px solid var(--color-border);backdrop-filter:blur(8px)}
.latest-badge small{color:var(--color-orange);font-size:0.7rem;font-weight:700;letter-spacing:0.15em;text-transform:uppercase}
.latest-badge strong{font-size:0.95rem}
.scroll-hint{position:absolute;bottom:2rem;left:50%;transform:translateX(-50%);display:flex;flex-direction:column;align-items:center;gap:0.5rem;font-size:0.7rem;letter-spacing:0.3em;text-transform:uppercase;color:var(--color-textDim)}
.scroll-hint::after{content:"";width:1px;height:2.5rem;background:linear-gradient(var(--color-orange),transparent)}
`
}

func cssThemes() string {
	return `
.themes{background:rgba(34,56,50,0.8)}
.theme-grid{display:grid;grid-template-columns:repeat(2,1fr);gap:1rem}
.theme-card{display:flex;flex-direction:column;align-items:center;text-align:center;gap:0.75rem;padding:1.5rem 1rem;border-radius:1rem;background:rgba(255,255,255,0.03);border:1px solid var(--color-border);transition:all 0.3s ease}
.theme-card:hover{border-color:var(--color-orange);transform:translateY(-4px)}
.theme-card svg{width:2rem;height:2rem;color:var(--color-orange)}
.theme-card h3{font-size:1rem}
.theme-card p{font-size:0.8rem}
`
}

func cssVideos() string {
	return `
.video-grid{display:grid;grid-template-columns:1fr;gap:2rem}
.video-card{display:flex;flex-direction:column;gap:1rem;cursor:pointer}
.video-thumb{position:relative;aspect-ratio:16/9;border-radius:1rem;overflow:hidden;background:var(--color-bgDeep)}
.video-thumb img{width:100%;height:100%;object-fit:cover;transition:transform 0.5s ease}
.video-card:hover .video-thumb img{transform:scale(1.05)}
.video-play{position:absolute;inset:0;display:flex;align-items:center;justify-content:center;background:rgba(0,0,0,0.3);opacity:0;transition:opacity 0.3s ease}
.video-card:hover .video-play{opacity:1}
.video-play span{display:flex;align-items:center;justify-content:center;width:4rem;height:4rem;border-radius:50%;background:var(--color-orange);color:var(--color-bg)}
.video-play svg{width:1.5rem;height:1.5rem;margin-left:0.2rem}
.video-duration{position:absolute;bottom:0.75rem;right:0.75rem;padding:0.2rem 0.5rem;border-radius:0.25rem;background:rgba(0,0,0,0.8);font-size:0.75rem;font-weight:700}
.video-category{position:absolute;top:0.75rem;left:0.75rem;padding:0.2rem 0.75rem;border-radius:9999px;background:var(--color-olive);font-size:0.7rem;font-weight:700;letter-spacing:0.1em;text-transform:uppercase}
.video-card h3{font-family:var(--font-sans);text-transform:none;font-size:1.25rem;line-height:1.3}
.video-card:hover h3{color:var(--color-orange)}
.video-views{font-size:0.8rem;color:var(--color-textDim)}
.channel-link{display:inline-flex;align-items:center;gap:0.25rem;color:var(--color-orange);font-weight:700}
.channel-link svg{width:1.25rem;height:1.25rem}
`
}

func cssAbout() string {
	return `
.about-grid{display:grid;grid-template-columns:1fr;gap:3rem;align-items:center}
.about-image{position:relative;border-radius:2rem;overflow:hidden;border:1px solid var(--color-border)}
.about-image img{width:100%;aspect-ratio:4/5;object-fit:cover;filter:grayscale(0.3)}
.about-list{display:flex;flex-direction:column;gap:1.25rem;margin-top:2rem}
.about-list li{padding-left:1.25rem;border-left:3px solid var(--color-orange)}
.about-list strong{display:block;color:var(--color-text)}
`
}

func cssNewsletter() string {
	return `
.newsletter{position:relative;border-radius:2rem;padding:3rem 1.5rem;background:linear-gradient(135deg,rgba(140,76,39,0.4),rgba(80,115,6,0.3));border:1px solid var(--color-border);text-align:center}
.newsletter > svg{width:3rem;height:3rem;margin:0 auto 1.5rem;color:var(--color-orange)}
.newsletter p{max-width:36rem;margin:1rem auto 2rem}
.newsletter-form{display:flex;flex-direction:column;gap:1rem;max-width:32rem;margin:0 auto}
.newsletter-form input{flex:1;padding:1rem 1.5rem;border-radius:9999px;border:1px solid var(--color-borderLight);background:var(--color-bgDeep);color:var(--color-text)}
.newsletter-form input:focus{outline:2px solid var(--color-orange);outline-offset:2px}
.form-status{min-height:1.5rem;margin-top:1rem;font-weight:600}
.form-status.error{color:var(--color-peach)}
.resource-grid{display:grid;grid-template-columns:repeat(2,1fr);gap:1rem;margin-top:3rem}
.resource-tile{display:flex;flex-direction:column;align-items:center;gap:0.75rem;padding:1.5rem;border-radius:1rem;background:rgba(255,255,255,0.05);border:1px solid var(--color-border);font-weight:700}
.resource-tile svg{width:1.75rem;height:1.75rem;color:var(--color-orange)}
`
}

func cssFooter() string {
	return `
.footer{position:relative;z-index:10;background:var(--color-bgDeep);padding:3rem 0;border-top:1px solid var(--color-border)}
.footer-inner{display:flex;flex-direction:column;align-items:center;gap:1.5rem;text-align:center}
.footer .logo{cursor:default}
.footer p{font-size:0.875rem;color:var(--color-textDim)}
.social{display:flex;gap:1rem}
.social a{display:inline-flex;align-items:center;justify-content:center;width:2.75rem;height:2.75rem;border-radius:50%;background:rgba(255,255,255,0.05);transition:all 0.2s ease}
.social a:hover{background:var(--color-orange);color:var(--color-bg)}
.social svg{width:1.25rem;height:1.25rem}
`
}

func cssBackground() string {
	return `
.fluid-bg{position:fixed;inset:0;z-index:0;overflow:hidden;pointer-events:none;background:var(--color-bg)}
.blob{position:absolute;border-radius:50%}
.blob-olive{top:-20%;left:-10%;width:80vw;height:80vw;background:var(--color-olive);filter:blur(80px);opacity:0.4;animation:drift 20s ease-in-out infinite alternate}
.blob-brown{bottom:-10%;right:-10%;width:90vw;height:70vw;background:var(--color-brown);filter:blur(60px);opacity:0.3;animation:drift 25s ease-in-out infinite alternate-reverse}
.blob-orange{top:40%;left:20%;width:50vw;height:50vw;background:var(--color-orange);filter:blur(100px);opacity:0.1;animation:pulse-blob 15s ease-in-out infinite}
.particle{position:absolute;border-radius:50%;background:var(--color-peach);opacity:var(--o);animation-name:rise;animation-timing-function:ease-in-out;animation-iteration-count:infinite}
.grain{position:absolute;inset:0;opacity:0.05;background-image:repeating-radial-gradient(circle at 17% 32%,#fff 0,transparent 1px,transparent 3px)}
.vignette{position:absolute;inset:0;background:radial-gradient(ellipse at center,transparent 40%,rgba(0,0,0,0.5) 100%)}
`
}

func cssChat() string {
	return `
.chat{position:fixed;right:1.5rem;bottom:1.5rem;z-index:60;display:flex;flex-direction:column;align-items:flex-end;gap:1rem}
.chat-toggle{width:3.5rem;height:3.5rem;border-radius:50%;border:none;background:var(--color-orange);color:var(--color-bg);cursor:pointer;box-shadow:0 10px 30px rgba(0,0,0,0.4);display:flex;align-items:center;justify-content:center}
.chat-toggle svg{width:1.5rem;height:1.5rem}
.chat-panel{display:flex;flex-direction:column;width:min(22rem,calc(100vw - 3rem));height:28rem;border-radius:1.25rem;overflow:hidden;background:var(--color-bgDeep);border:1px solid var(--color-borderLight);box-shadow:0 20px 50px rgba(0,0,0,0.5)}
.chat-panel[hidden]{display:none}
.chat-header{display:flex;align-items:center;justify-content:space-between;gap:0.75rem;padding:0.75rem 1rem;background:var(--color-bg);border-bottom:1px solid var(--color-border)}
.chat-header h2{font-size:1rem;display:flex;align-items:center;gap:0.5rem}
.chat-header h2 svg{width:1.25rem;height:1.25rem;color:var(--color-orange)}
.chat-status{font-size:0.7rem;color:var(--color-olive);font-weight:700;text-transform:uppercase}
.chat-status.offline{color:var(--color-peach)}
.chat-log{flex:1;overflow-y:auto;display:flex;flex-direction:column;gap:0.75rem;padding:1rem}
.chat-msg{max-width:85%;padding:0.6rem 0.9rem;border-radius:1rem;font-size:0.875rem;white-space:pre-wrap}
.chat-msg.user{align-self:flex-end;background:var(--color-orange);color:var(--color-bg);border-bottom-right-radius:0.25rem}
.chat-msg.model{align-self:flex-start;background:rgba(255,255,255,0.08);color:var(--color-text);border-bottom-left-radius:0.25rem}
.chat-msg.error{border:1px solid var(--color-peach);color:var(--color-peach)}
.chat-typing{font-size:0.75rem;color:var(--color-textDim);padding:0 1rem 0.5rem}
.chat-form{display:flex;gap:0.5rem;padding:0.75rem;border-top:1px solid var(--color-border)}
.chat-form input{flex:1;padding:0.6rem 1rem;border-radius:9999px;border:1px solid var(--color-borderLight);background:var(--color-bg);color:var(--color-text)}
.chat-form button{width:2.75rem;height:2.75rem;border-radius:50%;border:none;background:var(--color-orange);color:var(--color-bg);cursor:pointer;display:flex;align-items:center;justify-content:center}
.chat-form button svg{width:1.1rem;height:1.1rem}
.chat-form button:disabled{opacity:0.5;cursor:not-allowed}
`
}

func cssAnimations() string {
	return `
@keyframes spin{to{transform:rotate(360deg)}}
@keyframes float{0%,100%{transform:translateY(0)}50%{transform:translateY(-12px)}}
@keyframes rise{0%,100%{transform:translateY(0)}50%{transform:translateY(-50px);opacity:calc(var(--o) * 2)}}
@keyframes drift{0%{transform:translate(0,0) scale(1)}100%{transform:translate(10%,5%) scale(1.1)}}
@keyframes pulse-blob{0%,100%{transform:scale(1);opacity:0.1}50%{transform:scale(1.2);opacity:0.15}}
@media(prefers-reduced-motion:reduce){*{animation-duration:0.01ms!important;animation-iteration-count:1!important;transition-duration:0.01ms!important}html{scroll-behavior:auto}}
`
}

func cssAccessibility() string {
	return `
.sr-only{position:absolute;width:1px;height:1px;padding:0;margin:-1px;overflow:hidden;clip:rect(0,0,0,0);white-space:nowrap;border:0}
.skip-link{position:absolute;top:-40px;left:0;background:var(--color-orange);color:var(--color-bg);padding:0.5rem 1rem;z-index:1000;transition:top 0.3s;font-weight:700}
.skip-link:focus{top:0}
:focus-visible{outline:2px solid var(--color-orange);outline-offset:2px}
`
}

func cssResponsive() string {
	return `
@media(min-width:768px){
.theme-grid{grid-template-columns:repeat(3,1fr)}
.video-grid{grid-template-columns:repeat(3,1fr)}
.resource-grid{grid-template-columns:repeat(4,1fr)}
.newsletter{padding:4rem 3rem}
.newsletter-form{flex-direction:row}
.section-head{flex-direction:row;align-items:flex-end;justify-content:space-between}
.nav-links{display:flex}
.menu-toggle{display:none}
.footer-inner{flex-direction:row;justify-content:space-between;text-align:left}
}
@media(min-width:1024px){
.theme-grid{grid-template-columns:repeat(6,1fr)}
.hero-grid{grid-template-columns:1fr 1fr}
.about-grid{grid-template-columns:1fr 1fr}
}
`
}
