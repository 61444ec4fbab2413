package image

import (
	"fmt"
	"image"

	"github.com/taskflow/tonal/internal/colour"
)

// Method determines how a single colour is derived from the sampled pixels.
type Method string

const (
	// MethodAverage averages all pixels in the sample region.
	MethodAverage Method = "average"

	// MethodDominant picks the most frequent colour after 5-bit quantisation.
	MethodDominant Method = "dominant"
)

// ParseMethod parses a sampling method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodAverage, MethodDominant:
		return Method(s), nil
	default:
		return "", fmt.Errorf("invalid sampling method: %q (valid: average, dominant)", s)
	}
}

// Sampler derives a candidate background colour from an attachment image,
// e.g. to decide the overlay text colour on a thumbnail.
type Sampler struct {
	// Method selects between averaging and dominant-colour extraction.
	Method Method

	// CentreWeighted restricts sampling to the central region of the image,
	// where overlay text is usually rendered. The central half of each
	// dimension is used.
	CentreWeighted bool
}

// NewSampler creates a sampler with the default settings.
func NewSampler() *Sampler {
	return &Sampler{Method: MethodAverage}
}

// Sample derives a single colour from the image.
func (s *Sampler) Sample(img image.Image) (colour.RGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return colour.RGBA{}, fmt.Errorf("image has no pixels")
	}

	rect := bounds
	if s.CentreWeighted {
		rect = centreRect(bounds)
	}

	switch s.Method {
	case MethodDominant:
		return dominantColour(img, rect), nil
	case MethodAverage, "":
		return averageColour(img, rect), nil
	default:
		return colour.RGBA{}, fmt.Errorf("invalid sampling method: %q", s.Method)
	}
}

// centreRect returns the central half of the bounds in each dimension.
func centreRect(bounds image.Rectangle) image.Rectangle {
	w := bounds.Dx()
	h := bounds.Dy()
	return image.Rect(
		bounds.Min.X+w/4,
		bounds.Min.Y+h/4,
		bounds.Max.X-w/4,
		bounds.Max.Y-h/4,
	).Intersect(bounds)
}

// averageColour calculates the average colour of all pixels in a region.
func averageColour(img image.Image, rect image.Rectangle) colour.RGBA {
	var totalR, totalG, totalB uint64
	var count uint64

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA() returns 16-bit channels, convert to 8-bit.
			totalR += uint64(r >> 8)
			totalG += uint64(g >> 8)
			totalB += uint64(b >> 8)
			count++
		}
	}

	if count == 0 {
		return colour.Black
	}

	return colour.RGBA{
		R: float64(totalR/count) / 255.0,
		G: float64(totalG/count) / 255.0,
		B: float64(totalB/count) / 255.0,
		A: 1,
	}
}

// dominantColour finds the most frequent colour in a region.
// Colours are quantised to 5 bits per channel to merge near-identical pixels.
func dominantColour(img image.Image, rect image.Rectangle) colour.RGBA {
	counts := make(map[uint32]int)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			r8 := uint32((r >> 8) & 0xF8)
			g8 := uint32((g >> 8) & 0xF8)
			b8 := uint32((b >> 8) & 0xF8)

			packed := r8<<16 | g8<<8 | b8
			counts[packed]++
		}
	}

	var maxCount int
	var dominant uint32
	for c, count := range counts {
		if count > maxCount {
			maxCount = count
			dominant = c
		}
	}

	return colour.RGBA{
		R: float64((dominant>>16)&0xFF) / 255.0,
		G: float64((dominant>>8)&0xFF) / 255.0,
		B: float64(dominant&0xFF) / 255.0,
		A: 1,
	}
}
