package colour

import "fmt"

// Level is a WCAG conformance level for normal text.
type Level int

const (
	// LevelAA requires a contrast ratio of at least 4.5:1.
	LevelAA Level = iota
	// LevelAAA requires a contrast ratio of at least 7:1.
	LevelAAA
)

// Threshold returns the minimum contrast ratio for the level.
func (l Level) Threshold() float64 {
	if l == LevelAAA {
		return 7.0
	}
	return 4.5
}

// String returns the conventional name of the level.
func (l Level) String() string {
	if l == LevelAAA {
		return "aaa"
	}
	return "aa"
}

// ParseLevel parses a conformance level name ("aa" or "aaa").
func ParseLevel(s string) (Level, error) {
	switch s {
	case "aa", "AA":
		return LevelAA, nil
	case "aaa", "AAA":
		return LevelAAA, nil
	default:
		return LevelAA, fmt.Errorf("invalid conformance level: %q (valid: aa, aaa)", s)
	}
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two relative
// luminances. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). The result is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast calculates the contrast ratio between two colours.
func Contrast(a, b RGBA) float64 {
	return ContrastRatio(RelativeLuminance(a), RelativeLuminance(b))
}

// ForegroundChoice is one of the two fixed text colours the selector can
// return. There is never a third option.
type ForegroundChoice int

const (
	// ForegroundWhite means white text on the background.
	ForegroundWhite ForegroundChoice = iota
	// ForegroundBlack means black text on the background.
	ForegroundBlack
)

// String returns "white" or "black".
func (f ForegroundChoice) String() string {
	if f == ForegroundBlack {
		return "black"
	}
	return "white"
}

// RGBA returns the concrete colour for the choice.
func (f ForegroundChoice) RGBA() RGBA {
	if f == ForegroundBlack {
		return Black
	}
	return White
}

// SelectForeground selects the more legible of white or black text against
// the given background. White wins when its contrast meets the level's
// threshold and is at least as high as black's; otherwise black is returned.
// Pure and safe for concurrent use.
func SelectForeground(bg RGBA, level Level) ForegroundChoice {
	bgLum := RelativeLuminance(bg)

	// White has luminance 1, black has luminance 0.
	whiteContrast := ContrastRatio(bgLum, 1.0)
	blackContrast := ContrastRatio(bgLum, 0.0)

	if whiteContrast >= level.Threshold() && whiteContrast >= blackContrast {
		return ForegroundWhite
	}
	return ForegroundBlack
}

// SelectForegroundOn flattens a translucent background against the given
// surface before selecting, so contrast is judged against what is actually
// rendered.
func SelectForegroundOn(bg, surface RGBA, level Level) ForegroundChoice {
	return SelectForeground(bg.Over(surface), level)
}
