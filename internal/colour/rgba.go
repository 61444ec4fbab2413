// Package colour provides WCAG luminance and contrast computation for
// choosing legible text colours against arbitrary backgrounds.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a colour with four normalised channels in [0, 1].
// Values are immutable once constructed.
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Common fixed colours used by the foreground selector.
var (
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
)

// ChannelError reports a channel value outside the [0, 1] range.
type ChannelError struct {
	Channel string
	Value   float64
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("invalid channel value: %s=%g (must be in [0, 1])", e.Channel, e.Value)
}

// New constructs an RGBA, validating that every channel lies in [0, 1].
// Returns a *ChannelError naming the first offending channel otherwise.
func New(r, g, b, a float64) (RGBA, error) {
	channels := []struct {
		name  string
		value float64
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
		{"alpha", a},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 1 {
			return RGBA{}, &ChannelError{Channel: ch.name, Value: ch.value}
		}
	}
	return RGBA{R: r, G: g, B: b, A: a}, nil
}

// ParseHex parses a hex colour string. Supports #RRGGBB, #RGB and, for
// translucent colours, #RRGGBBAA (each with or without the leading #).
// Without an alpha component the colour is fully opaque.
func ParseHex(hex string) (RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 && len(hex) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex colour length: expected 6 or 8 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid red component: %w", err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid green component: %w", err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid blue component: %w", err)
	}

	a := uint64(255)
	if len(hex) == 8 {
		a, err = strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid alpha component: %w", err)
		}
	}

	return RGBA{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}, nil
}

// FromColor samples a standard library colour into a normalised RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	// RGBA() returns 16-bit channels; normalise to [0, 1].
	return RGBA{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
		A: float64(a) / 65535.0,
	}
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
// Alpha is not encoded.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r8(), c.g8(), c.b8())
}

// String returns the colour in "rgb(r, g, b)" form using 8-bit channels.
func (c RGBA) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r8(), c.g8(), c.b8())
}

// Color converts to a standard library colour, flattening alpha to opaque.
func (c RGBA) Color() color.Color {
	return color.RGBA{R: c.r8(), G: c.g8(), B: c.b8(), A: 255}
}

// Over composites c over the given opaque surface using the source-over
// operator. A fully opaque colour is returned unchanged. Translucent
// category colours should be flattened this way before computing luminance,
// since the WCAG formula assumes an opaque background.
func (c RGBA) Over(surface RGBA) RGBA {
	if c.A >= 1 {
		return c
	}
	return RGBA{
		R: c.R*c.A + surface.R*(1-c.A),
		G: c.G*c.A + surface.G*(1-c.A),
		B: c.B*c.A + surface.B*(1-c.A),
		A: 1,
	}
}

func (c RGBA) r8() uint8 { return to8Bit(c.R) }
func (c RGBA) g8() uint8 { return to8Bit(c.G) }
func (c RGBA) b8() uint8 { return to8Bit(c.B) }

// to8Bit converts a normalised channel to 8-bit with rounding and clamping.
func to8Bit(v float64) uint8 {
	scaled := int(v*255.0 + 0.5)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
