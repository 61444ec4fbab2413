package colour

import "math"

// RelativeLuminance calculates the relative luminance of a colour according
// to WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// The alpha channel is ignored; flatten translucent colours with Over first.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func RelativeLuminance(c RGBA) float64 {
	r := gammaCorrect(c.R)
	g := gammaCorrect(c.G)
	b := gammaCorrect(c.B)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies the WCAG channel linearisation to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
