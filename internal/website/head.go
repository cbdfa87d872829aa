package website

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// DefaultLanguage is used when a PageConfig carries none.
const DefaultLanguage = "pt-BR"

// RenderHead generates a complete <head> section with SEO, Open Graph, and JSON-LD.
func RenderHead(cfg PageConfig, customCSS string) string {
	var sb strings.Builder

	themeColor := cfg.ThemeColor
	if themeColor == "" {
		themeColor = Colors["bg"]
	}

	sb.WriteString("<head>\n")

	// Essential meta tags
	sb.WriteString(`<meta charset="UTF-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")

	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(cfg.Title)))

	if cfg.Description != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="description" content="%s">`+"\n", html.EscapeString(cfg.Description)))
	}
	if len(cfg.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf(`<meta name="keywords" content="%s">`+"\n", html.EscapeString(strings.Join(cfg.Keywords, ", "))))
	}
	if cfg.Author != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="author" content="%s">`+"\n", html.EscapeString(cfg.Author)))
	}
	if cfg.URL != "" {
		sb.WriteString(fmt.Sprintf(`<link rel="canonical" href="%s">`+"\n", html.EscapeString(cfg.URL)))
	}

	sb.WriteString(fmt.Sprintf(`<meta name="theme-color" content="%s">`+"\n", html.EscapeString(themeColor)))
	sb.WriteString(`<meta name="robots" content="index, follow">` + "\n")

	sb.WriteString(renderOpenGraph(cfg))
	sb.WriteString(renderTwitterCard(cfg))
	sb.WriteString(renderJSONLD(cfg))

	if cfg.Favicon != "" {
		sb.WriteString(fmt.Sprintf(`<link rel="icon" href="%s">`+"\n", html.EscapeString(cfg.Favicon)))
	}

	sb.WriteString("<style>\n")
	sb.WriteString(RenderStyles())
	if customCSS != "" {
		sb.WriteString("\n")
		sb.WriteString(customCSS)
	}
	sb.WriteString("\n</style>\n")

	sb.WriteString("</head>\n")

	return sb.String()
}

func renderOpenGraph(cfg PageConfig) string {
	var sb strings.Builder

	sb.WriteString(`<meta property="og:type" content="website">` + "\n")
	sb.WriteString(fmt.Sprintf(`<meta property="og:site_name" content="%s">`+"\n", BrandName))

	if cfg.Title != "" {
		sb.WriteString(fmt.Sprintf(`<meta property="og:title" content="%s">`+"\n", html.EscapeString(cfg.Title)))
	}
	if cfg.Description != "" {
		sb.WriteString(fmt.Sprintf(`<meta property="og:description" content="%s">`+"\n", html.EscapeString(cfg.Description)))
	}
	if cfg.URL != "" {
		sb.WriteString(fmt.Sprintf(`<meta property="og:url" content="%s">`+"\n", html.EscapeString(cfg.URL)))
	}
	if cfg.OGImage != "" {
		sb.WriteString(fmt.Sprintf(`<meta property="og:image" content="%s">`+"\n", html.EscapeString(cfg.OGImage)))
	}

	// og:locale uses underscores: pt_BR
	locale := strings.ReplaceAll(pageLanguage(cfg), "-", "_")
	sb.WriteString(fmt.Sprintf(`<meta property="og:locale" content="%s">`+"\n", html.EscapeString(locale)))

	return sb.String()
}

func renderTwitterCard(cfg PageConfig) string {
	var sb strings.Builder

	sb.WriteString(`<meta name="twitter:card" content="summary_large_image">` + "\n")

	if cfg.Title != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="twitter:title" content="%s">`+"\n", html.EscapeString(cfg.Title)))
	}
	if cfg.Description != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="twitter:description" content="%s">`+"\n", html.EscapeString(cfg.Description)))
	}
	if cfg.OGImage != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="twitter:image" content="%s">`+"\n", html.EscapeString(cfg.OGImage)))
	}

	return sb.String()
}

type jsonLD struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
	Language    string   `json:"inLanguage,omitempty"`
}

// renderJSONLD describes the channel as a schema.org Organization.
func renderJSONLD(cfg PageConfig) string {
	doc := jsonLD{
		Context:     "https://schema.org",
		Type:        "Organization",
		Name:        BrandName,
		Description: cfg.Description,
		URL:         cfg.URL,
		Logo:        cfg.Favicon,
		Language:    pageLanguage(cfg),
	}
	if cfg.ChannelURL != "" {
		doc.SameAs = []string{cfg.ChannelURL}
	}

	// encoding/json escapes <, > and & so the payload cannot close the script tag.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`<script type="application/ld+json">%s</script>`+"\n", data)
}

func pageLanguage(cfg PageConfig) string {
	if cfg.Language == "" {
		return DefaultLanguage
	}
	return cfg.Language
}

// RenderDocument wraps content in a complete HTML document.
func RenderDocument(cfg PageConfig, customCSS, bodyContent string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s">
%s<body>
%s
</body>
</html>`, html.EscapeString(pageLanguage(cfg)), RenderHead(cfg, customCSS), bodyContent)
}
