// Package content holds the display records of the VITTIN page: videos,
// themes, creator bullets and resources.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog is returned when a catalog has a record with a missing field.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Video is one showcased video.
type Video struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Thumbnail   string `yaml:"thumbnail"`
	Views       string `yaml:"views"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

// Theme is one content category of the channel.
type Theme struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// AboutItem is one bullet of the creator section.
type AboutItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Resource is one tile of the resources grid.
type Resource struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Catalog is everything the page shows that is not chrome.
type Catalog struct {
	LatestVideo string      `yaml:"latest_video"`
	Videos      []Video     `yaml:"videos"`
	Themes      []Theme     `yaml:"themes"`
	About       []AboutItem `yaml:"about"`
	Resources   []Resource  `yaml:"resources"`
}

// Validate reports the first record with a missing field.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.LatestVideo) == "" {
		return fmt.Errorf("%w: latest_video is empty", ErrInvalidCatalog)
	}
	if len(c.Videos) == 0 {
		return fmt.Errorf("%w: no videos", ErrInvalidCatalog)
	}
	if len(c.Themes) == 0 {
		return fmt.Errorf("%w: no themes", ErrInvalidCatalog)
	}

	seen := make(map[string]bool, len(c.Videos))
	for i, v := range c.Videos {
		if field := missing(
			"id", v.ID, "title", v.Title, "category", v.Category, "thumbnail", v.Thumbnail,
			"views", v.Views, "duration", v.Duration, "description", v.Description,
		); field != "" {
			return fmt.Errorf("%w: videos[%d]: %s is empty", ErrInvalidCatalog, i, field)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: videos[%d]: duplicate id %q", ErrInvalidCatalog, i, v.ID)
		}
		seen[v.ID] = true
	}

	for i, t := range c.Themes {
		if field := missing("name", t.Name, "icon", t.Icon, "description", t.Description); field != "" {
			return fmt.Errorf("%w: themes[%d]: %s is empty", ErrInvalidCatalog, i, field)
		}
	}
	for i, a := range c.About {
		if field := missing("title", a.Title, "description", a.Description); field != "" {
			return fmt.Errorf("%w: about[%d]: %s is empty", ErrInvalidCatalog, i, field)
		}
	}
	for i, r := range c.Resources {
		if field := missing("label", r.Label, "icon", r.Icon); field != "" {
			return fmt.Errorf("%w: resources[%d]: %s is empty", ErrInvalidCatalog, i, field)
		}
	}
	return nil
}

// missing takes name/value pairs and returns the first name whose value is blank.
func missing(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return pairs[i]
		}
	}
	return ""
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	out := *c
	out.Videos = append([]Video(nil), c.Videos...)
	out.Themes = append([]Theme(nil), c.Themes...)
	out.About = append([]AboutItem(nil), c.About...)
	out.Resources = append([]Resource(nil), c.Resources...)
	return &out
}
