// Package a11y provides accessibility helpers for the rendered page and an
// audit that checks the final HTML.
package a11y

import (
	"fmt"
	"html"
)

// LiveRegion represents an ARIA live region for announcements.
type LiveRegion struct {
	// ID is the unique identifier for this region.
	ID string

	// Politeness determines how urgently the announcement is made.
	// Options: "polite" (default), "assertive"
	Politeness string

	// Atomic determines if the whole region is announced.
	Atomic bool

	// Relevant specifies what changes trigger announcements.
	Relevant string

	// Label is the accessible name of the region.
	Label string

	// Class is added to the region element.
	Class string
}

// NewLiveRegion creates a new live region.
func NewLiveRegion(id string, opts ...LiveRegionOption) *LiveRegion {
	lr := &LiveRegion{
		ID:         id,
		Politeness: "polite",
		Relevant:   "additions text",
	}

	for _, opt := range opts {
		opt(lr)
	}

	return lr
}

// LiveRegionOption configures a live region.
type LiveRegionOption func(*LiveRegion)

// Assertive makes the region assertive.
func Assertive() LiveRegionOption {
	return func(lr *LiveRegion) {
		lr.Politeness = "assertive"
	}
}

// Atomic makes the region atomic.
func Atomic() LiveRegionOption {
	return func(lr *LiveRegion) {
		lr.Atomic = true
	}
}

// WithLabel sets the accessible name.
func WithLabel(label string) LiveRegionOption {
	return func(lr *LiveRegion) {
		lr.Label = label
	}
}

// WithClass sets the CSS class. Without one the region is screen-reader only.
func WithClass(class string) LiveRegionOption {
	return func(lr *LiveRegion) {
		lr.Class = class
	}
}

// Open renders the opening tag of the region; the caller writes the children
// and closes it with "</div>".
func (lr *LiveRegion) Open() string {
	class := lr.Class
	if class == "" {
		class = "sr-only"
	}

	attrs := fmt.Sprintf(`id="%s" role="log" aria-live="%s" aria-relevant="%s" class="%s"`,
		html.EscapeString(lr.ID), lr.Politeness, lr.Relevant, html.EscapeString(class))
	if lr.Atomic {
		attrs += ` aria-atomic="true"`
	}
	if lr.Label != "" {
		attrs += " " + AriaLabel(lr.Label)
	}
	return "<div " + attrs + ">"
}

// RenderHTML generates the HTML for an empty live region.
func (lr *LiveRegion) RenderHTML() string {
	return lr.Open() + "</div>"
}

// SkipLink generates a skip link for keyboard navigation.
func SkipLink(target, text string) string {
	return fmt.Sprintf(`<a href="#%s" class="skip-link">%s</a>`,
		html.EscapeString(target), html.EscapeString(text))
}

// SROnly returns CSS class for screen-reader-only content.
func SROnly() string {
	return "sr-only"
}

// AriaLabel generates an aria-label attribute.
func AriaLabel(label string) string {
	return fmt.Sprintf(`aria-label="%s"`, html.EscapeString(label))
}

// AriaControls generates an aria-controls attribute.
func AriaControls(id string) string {
	return fmt.Sprintf(`aria-controls="%s"`, html.EscapeString(id))
}

// AriaExpanded generates an aria-expanded attribute.
func AriaExpanded(expanded bool) string {
	return fmt.Sprintf(`aria-expanded="%t"`, expanded)
}

// AriaHidden generates an aria-hidden attribute.
func AriaHidden(hidden bool) string {
	return fmt.Sprintf(`aria-hidden="%t"`, hidden)
}

// Role generates a role attribute.
func Role(role string) string {
	return fmt.Sprintf(`role="%s"`, html.EscapeString(role))
}
