// Package theme manages the TaskFlow category colour theme as an explicit
// configuration object with a defined load/save lifecycle, rather than
// ambient process-wide state.
package theme

import (
	"fmt"

	"github.com/taskflow/tonal/internal/colour"
)

// CurrentVersion is the theme file format version written by Save.
const CurrentVersion = 1

// Category is a TaskFlow life domain with its user-chosen colour.
type Category struct {
	// Key is the stable identifier used in config files and CLI arguments.
	Key string `json:"key"`

	// Label is the human-readable category name.
	Label string `json:"label"`

	// Hex is the category background colour.
	Hex string `json:"hex"`
}

// Colour parses the category's hex colour.
func (c Category) Colour() (colour.RGBA, error) {
	rgba, err := colour.ParseHex(c.Hex)
	if err != nil {
		return colour.RGBA{}, fmt.Errorf("category %q: %w", c.Key, err)
	}
	return rgba, nil
}

// Theme is the full category colour configuration.
type Theme struct {
	Version int `json:"version"`

	// Level is the WCAG conformance level used for foreground selection
	// ("aa" or "aaa").
	Level string `json:"level"`

	Categories []Category `json:"categories"`
}

// Default returns the built-in TaskFlow category theme.
func Default() *Theme {
	return &Theme{
		Version: CurrentVersion,
		Level:   colour.LevelAAA.String(),
		Categories: []Category{
			{Key: "work", Label: "Work", Hex: "#d74100"},
			{Key: "health", Label: "Health", Hex: "#2e7d32"},
			{Key: "family", Label: "Family", Hex: "#7b1fa2"},
			{Key: "finance", Label: "Finance", Hex: "#00695c"},
			{Key: "growth", Label: "Personal Growth", Hex: "#1565c0"},
			{Key: "leisure", Label: "Leisure", Hex: "#ffda96"},
		},
	}
}

// ConformanceLevel parses the theme's configured level.
func (t *Theme) ConformanceLevel() (colour.Level, error) {
	return colour.ParseLevel(t.Level)
}

// Category returns the category with the given key, if present.
func (t *Theme) Category(key string) (Category, bool) {
	for _, c := range t.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// SetColour updates the colour of an existing category or appends a new one.
// The hex value is validated before the theme is touched.
func (t *Theme) SetColour(key, hex string) error {
	parsed, err := colour.ParseHex(hex)
	if err != nil {
		return fmt.Errorf("invalid colour for category %q: %w", key, err)
	}

	for i, c := range t.Categories {
		if c.Key == key {
			t.Categories[i].Hex = parsed.Hex()
			return nil
		}
	}

	t.Categories = append(t.Categories, Category{
		Key:   key,
		Label: key,
		Hex:   parsed.Hex(),
	})
	return nil
}

// Validate checks that every category has a key and a parseable colour and
// that the conformance level is recognised.
func (t *Theme) Validate() error {
	if _, err := t.ConformanceLevel(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(t.Categories))
	for _, c := range t.Categories {
		if c.Key == "" {
			return fmt.Errorf("category with empty key (label %q)", c.Label)
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate category key %q", c.Key)
		}
		seen[c.Key] = true

		parsed, err := c.Colour()
		if err != nil {
			return err
		}
		// Card backgrounds render directly; translucency has no surface here.
		if parsed.A < 1 {
			return fmt.Errorf("category %q colour must be opaque", c.Key)
		}
	}
	return nil
}
