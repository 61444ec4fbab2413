package colour

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI escape codes for truecolour terminal previews.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisablePreviews suppresses all colour preview output (set by --no-color).
var DisablePreviews = false

// PreviewsSupported reports whether stdout is a terminal with at least
// 256-colour support.
func PreviewsSupported() bool {
	if DisablePreviews {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	profile := termenv.EnvColorProfile()
	return profile != termenv.Ascii
}

// Swatch returns an ANSI-coloured block for a colour, width characters wide.
func Swatch(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.r8(), c.g8(), c.b8(), ansiSuffix)
	block := strings.Repeat(" ", width)

	return bg + block + ansiReset
}

// SwatchWithText returns a colour block with centred overlay text. The text
// colour is the selector's actual foreground choice for the background, so
// previews show exactly what a compliant rendering would use.
func SwatchWithText(c RGBA, text string, width int, level Level) string {
	if width <= 0 {
		width = defaultWidth
	}

	fgChoice := SelectForeground(c, level).RGBA()

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.r8(), c.g8(), c.b8(), ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgChoice.r8(), fgChoice.g8(), fgChoice.b8(), ansiSuffix)

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg + fg + display + ansiReset
}

// FormatWithSwatch formats a colour with its preview block and hex code.
func FormatWithSwatch(c RGBA, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// FormatWithLabel formats a colour with a label, preview block and hex code.
func FormatWithLabel(c RGBA, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(c, width), label, c.Hex())
}
