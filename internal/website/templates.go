// Package website renders the VITTIN page in plain Go: page model, palette,
// CSS, the document head and the helpers shared by the components.
package website

// PageConfig defines the document metadata of the page.
type PageConfig struct {
	// Title is the page title (shown in browser tab and search results)
	Title string
	// Description is the meta description for SEO
	Description string
	// URL is the canonical URL of the page
	URL string
	// Keywords are SEO keywords for the page
	Keywords []string
	// Author is the author meta tag
	Author string
	// OGImage is the Open Graph image URL (for social sharing)
	OGImage string
	// Language is the page language (default: "pt-BR")
	Language string
	// ThemeColor is the mobile browser theme color
	ThemeColor string
	// Favicon is the favicon URL
	Favicon string
	// ChannelURL is the YouTube channel, used in structured data
	ChannelURL string
}

// NavLink represents a navigation link.
type NavLink struct {
	Label    string
	URL      string
	External bool
}

// SocialLink is one icon link of the footer.
type SocialLink struct {
	// Name is the accessible name, e.g. "Instagram"
	Name string
	// Icon is the icon key, see components.Icon
	Icon string
	URL  string
}

// Section is a page section reachable from the navigation.
type Section struct {
	// Name is the canonical (pt-BR) label. The anchor is derived from it.
	Name string
	// Key is the translation key of the visible label.
	Key string
}

// ID returns the element id of the section: the accent-stripped lower-case name.
func (s Section) ID() string {
	return Slug(s.Name)
}

// Navigable sections, in navigation order.
var (
	SectionSeries    = Section{Name: "Séries", Key: "nav.series"}
	SectionAbout     = Section{Name: "Sobre", Key: "nav.about"}
	SectionResources = Section{Name: "Recursos", Key: "nav.resources"}
)

// NavSections lists the sections shown in the navigation.
func NavSections() []Section {
	return []Section{SectionSeries, SectionAbout, SectionResources}
}

// Brand assets and links.
const (
	BrandName     = "VITTIN"
	LogoURL       = "https://i.imgur.com/G5OQd8Y.png"
	ChannelURL    = "https://youtube.com"
	PresenterURL  = "https://images.unsplash.com/photo-1542596768-5d1d21f1cfbc?q=80&w=1000&auto=format&fit=crop"
	CreatorURL    = "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?q=80&w=1000&auto=format&fit=crop"
	ScriptPath    = "/assets/vittin.js"
	ChatPath      = "/api/chat"
	ChatWSPath    = "/api/chat/ws"
	NewsletterURL = "/newsletter"
)

// DefaultSocialLinks returns the footer links.
func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{Name: "Instagram", Icon: "instagram", URL: "https://instagram.com"},
		{Name: "Twitter", Icon: "twitter", URL: "https://twitter.com"},
		{Name: "YouTube", Icon: "youtube", URL: ChannelURL},
	}
}

// DefaultPageConfig returns the page metadata for a locale and base URL.
func DefaultPageConfig(title, description, locale, baseURL string) PageConfig {
	return PageConfig{
		Title:       title,
		Description: description,
		URL:         baseURL,
		Keywords:    []string{"engenharia", "paleontologia", "geocronologia", "astronomia", "tecnologia", "ciência", "youtube"},
		Author:      BrandName,
		OGImage:     PresenterURL,
		Language:    locale,
		ThemeColor:  Colors["bg"],
		Favicon:     LogoURL,
		ChannelURL:  ChannelURL,
	}
}
