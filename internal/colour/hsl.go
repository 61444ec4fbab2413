package colour

import "math"

// ToHSL converts a colour to HSL.
// Returns hue (0-360), saturation (0-1), lightness (0-1). Alpha is dropped.
func ToHSL(c RGBA) (h, s, l float64) {
	maxVal := math.Max(c.R, math.Max(c.G, c.B))
	minVal := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic.
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	case c.B:
		h = (c.R-c.G)/delta + 4
	}

	h *= 60
	return h, s, l
}

// FromHSL converts HSL to an opaque colour.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func FromHSL(h, s, l float64) RGBA {
	if s == 0 {
		// Achromatic (grey).
		return RGBA{R: l, G: l, B: l, A: 1}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBA{
		R: hueToChannel(p, q, h+120),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-120),
		A: 1,
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// complianceMaxAttempts caps the iterative lightness adjustment.
const complianceMaxAttempts = 20

// AdjustTowardCompliance nudges a background colour until its selected
// foreground meets the given level's contrast threshold, preserving hue and
// saturation. Light colours are pushed lighter (improving black-text
// contrast) and dark colours darker (improving white-text contrast), in 5%
// lightness steps. Returns the input unchanged when it already complies.
func AdjustTowardCompliance(bg RGBA, level Level) RGBA {
	if compliant(bg, level) {
		return bg
	}

	h, s, l := ToHSL(bg)
	const stepSize = 0.05
	pushLighter := RelativeLuminance(bg) >= 0.5

	adjusted := bg
	for attempts := 0; attempts < complianceMaxAttempts; attempts++ {
		if pushLighter {
			l = math.Min(0.99, l+stepSize)
		} else {
			l = math.Max(0.01, l-stepSize)
		}
		// Snap to 8-bit so the result still complies after a hex round trip.
		adjusted = quantise(FromHSL(h, s, l))
		if compliant(adjusted, level) {
			return adjusted
		}
	}
	return adjusted
}

// quantise rounds each channel to the nearest 8-bit value.
func quantise(c RGBA) RGBA {
	return RGBA{
		R: float64(to8Bit(c.R)) / 255.0,
		G: float64(to8Bit(c.G)) / 255.0,
		B: float64(to8Bit(c.B)) / 255.0,
		A: c.A,
	}
}

// compliant reports whether the selected foreground for bg meets the level.
func compliant(bg RGBA, level Level) bool {
	fg := SelectForeground(bg, level)
	return Contrast(bg, fg.RGBA()) >= level.Threshold()
}
