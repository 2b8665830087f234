package models

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// HouseIDLength is the maximum number of runes kept in a house slug.
	HouseIDLength = 10
	// CategoryIDLength is the maximum number of runes kept in a category slug.
	CategoryIDLength = 15

	DefaultHouseIcon  = "🏰"
	DefaultHouseColor = "#6366f1"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// House represents a competing team.
type House struct {
	// ID is derived from the name at creation (see Slug) and never changes.
	ID string `json:"id"`

	// Name is the display name (e.g., "Casa Santa Rita").
	Name string `json:"name"`

	// Color is a hex color used by charts and cards.
	Color string `json:"color"`

	// Icon is a short emoji shown next to the name.
	Icon string `json:"icon"`
}

// Category is a labeled shortcut that pre-fills a point event.
// It has no referential link to the events created from it.
type Category struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	DefaultPoints int    `json:"defaultPoints"`
}

// Slug derives a stable id from a label: lower-cased, whitespace runs
// replaced by "-", truncated to maxRunes runes. Two labels that differ only in
// case or whitespace produce the same slug.
func Slug(label string, maxRunes int) string {
	s := cases.Lower(language.Und).String(strings.TrimSpace(label))
	s = whitespaceRun.ReplaceAllString(s, "-")
	if r := []rune(s); len(r) > maxRunes {
		s = string(r[:maxRunes])
	}
	return s
}
