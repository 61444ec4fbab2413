package theme

import (
	"encoding/json"
	"fmt"

	"github.com/taskflow/tonal/internal/colour"
)

// Entry is the audit result for a single category.
type Entry struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Hex        string `json:"hex"`
	Foreground string `json:"foreground"`

	WhiteContrast float64 `json:"white_contrast"`
	BlackContrast float64 `json:"black_contrast"`

	// Contrast is the ratio achieved by the selected foreground.
	Contrast float64 `json:"contrast"`

	PassesAA  bool `json:"passes_aa"`
	PassesAAA bool `json:"passes_aaa"`

	// Suggested holds a compliance-adjusted replacement colour for entries
	// that fail the audited level, empty otherwise.
	Suggested string `json:"suggested,omitempty"`
}

// Passes reports whether the entry meets the given level.
func (e Entry) Passes(level colour.Level) bool {
	if level == colour.LevelAAA {
		return e.PassesAAA
	}
	return e.PassesAA
}

// Report is the audit result for a whole theme.
type Report struct {
	Level   string  `json:"level"`
	Entries []Entry `json:"entries"`
}

// Compliant reports whether every category passed the audited level.
func (r *Report) Compliant() bool {
	level, err := colour.ParseLevel(r.Level)
	if err != nil {
		return false
	}
	for _, e := range r.Entries {
		if !e.Passes(level) {
			return false
		}
	}
	return true
}

// ToJSON encodes the report for machine consumption.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Audit checks every category colour against both fixed foreground choices
// and reports ratios, the selected foreground, and AA/AAA verdicts at the
// given level. Failing entries carry a hue-preserving suggested replacement.
func Audit(t *Theme, level colour.Level) (*Report, error) {
	report := &Report{
		Level:   level.String(),
		Entries: make([]Entry, 0, len(t.Categories)),
	}

	for _, cat := range t.Categories {
		bg, err := cat.Colour()
		if err != nil {
			return nil, err
		}

		bgLum := colour.RelativeLuminance(bg)
		whiteContrast := colour.ContrastRatio(bgLum, 1.0)
		blackContrast := colour.ContrastRatio(bgLum, 0.0)

		fg := colour.SelectForeground(bg, level)
		achieved := whiteContrast
		if fg == colour.ForegroundBlack {
			achieved = blackContrast
		}

		entry := Entry{
			Key:           cat.Key,
			Label:         cat.Label,
			Hex:           bg.Hex(),
			Foreground:    fg.String(),
			WhiteContrast: whiteContrast,
			BlackContrast: blackContrast,
			Contrast:      achieved,
			PassesAA:      achieved >= colour.LevelAA.Threshold(),
			PassesAAA:     achieved >= colour.LevelAAA.Threshold(),
		}

		if !entry.Passes(level) {
			entry.Suggested = colour.AdjustTowardCompliance(bg, level).Hex()
		}

		report.Entries = append(report.Entries, entry)
	}

	return report, nil
}

// ApplySuggestions replaces every failing category colour with its audit
// suggestion, returning the number of categories changed.
func ApplySuggestions(t *Theme, report *Report) (int, error) {
	changed := 0
	for _, e := range report.Entries {
		if e.Suggested == "" {
			continue
		}
		if err := t.SetColour(e.Key, e.Suggested); err != nil {
			return changed, fmt.Errorf("failed to apply suggestion for %q: %w", e.Key, err)
		}
		changed++
	}
	return changed, nil
}
