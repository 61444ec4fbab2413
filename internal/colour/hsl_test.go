package colour

import (
	"math"
	"testing"
)

func TestToHSL(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		wantH float64
		wantS float64
		wantL float64
	}{
		{name: "pure red", hex: "#ff0000", wantH: 0, wantS: 1, wantL: 0.5},
		{name: "pure green", hex: "#00ff00", wantH: 120, wantS: 1, wantL: 0.5},
		{name: "pure blue", hex: "#0000ff", wantH: 240, wantS: 1, wantL: 0.5},
		{name: "white", hex: "#ffffff", wantH: 0, wantS: 0, wantL: 1},
		{name: "black", hex: "#000000", wantH: 0, wantS: 0, wantL: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := ToHSL(mustHex(t, tt.hex))
			if math.Abs(h-tt.wantH) > 0.5 || math.Abs(s-tt.wantS) > 0.01 || math.Abs(l-tt.wantL) > 0.01 {
				t.Errorf("ToHSL(%s) = (%g, %g, %g), want (%g, %g, %g)",
					tt.hex, h, s, l, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	hexes := []string{"#d74100", "#ffda96", "#336699", "#a0a0a0", "#00ff7f"}

	for _, hex := range hexes {
		t.Run(hex, func(t *testing.T) {
			orig := mustHex(t, hex)
			h, s, l := ToHSL(orig)
			back := FromHSL(h, s, l)

			if math.Abs(back.R-orig.R) > 0.01 ||
				math.Abs(back.G-orig.G) > 0.01 ||
				math.Abs(back.B-orig.B) > 0.01 {
				t.Errorf("round trip of %s drifted: got %s", hex, back.Hex())
			}
		})
	}
}

func TestAdjustTowardCompliance(t *testing.T) {
	t.Run("compliant colour unchanged", func(t *testing.T) {
		for _, hex := range []string{"#000000", "#ffffff", "#001f3f"} {
			bg := mustHex(t, hex)
			if got := AdjustTowardCompliance(bg, LevelAAA); got != bg {
				t.Errorf("AdjustTowardCompliance(%s) = %s, want unchanged", hex, got.Hex())
			}
		}
	})

	t.Run("non-compliant colour becomes compliant", func(t *testing.T) {
		for _, hex := range []string{"#d74100", "#808080", "#b07030"} {
			bg := mustHex(t, hex)
			if compliant(bg, LevelAAA) {
				t.Fatalf("test colour %s is already compliant", hex)
			}

			adjusted := AdjustTowardCompliance(bg, LevelAAA)
			if !compliant(adjusted, LevelAAA) {
				fg := SelectForeground(adjusted, LevelAAA)
				t.Errorf("AdjustTowardCompliance(%s) = %s, contrast %.2f with %s text still below %.1f",
					hex, adjusted.Hex(), Contrast(adjusted, fg.RGBA()), fg, LevelAAA.Threshold())
			}
		}
	})

	t.Run("hue is preserved", func(t *testing.T) {
		bg := mustHex(t, "#d74100")
		hBefore, _, _ := ToHSL(bg)
		hAfter, _, _ := ToHSL(AdjustTowardCompliance(bg, LevelAAA))
		// Allow a little drift from 8-bit snapping.
		if math.Abs(hBefore-hAfter) > 3.0 {
			t.Errorf("hue drifted from %g to %g", hBefore, hAfter)
		}
	})
}
