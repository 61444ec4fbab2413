package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/colour"
)

var (
	// Foreground command flags
	foregroundSurface string
	foregroundFormat  string
)

// foregroundCmd represents the foreground command
var foregroundCmd = &cobra.Command{
	Use:   "foreground <colour>",
	Short: "Select white or black text for a background colour",
	Long: `Select the more legible of white or black text against a background
colour, using WCAG contrast rules.

White is chosen when its contrast ratio meets the conformance level's
threshold and is at least as high as black's; otherwise black is chosen.
The result is always exactly white or black, never an intermediate colour.

Examples:
  # Choose a text colour for a category background
  tonal foreground "#d74100"

  # Use the less strict AA threshold
  tonal foreground --level aa "#d74100"

  # Flatten a translucent colour against its rendering surface
  tonal foreground --surface "#1c1c1e" "#d7410080"

  # Machine-readable output
  tonal foreground --format json "#ffda96"`,
	Args: cobra.ExactArgs(1),
	RunE: runForeground,
}

func init() {
	foregroundCmd.Flags().StringVar(&foregroundSurface, "surface", "", "surface colour the background is rendered on (hex)")
	foregroundCmd.Flags().StringVarP(&foregroundFormat, "format", "f", "text", "output format (text, json)")
}

// foregroundResult is the JSON shape of a foreground selection.
type foregroundResult struct {
	Background    string  `json:"background"`
	Foreground    string  `json:"foreground"`
	Level         string  `json:"level"`
	Contrast      float64 `json:"contrast"`
	WhiteContrast float64 `json:"white_contrast"`
	BlackContrast float64 `json:"black_contrast"`
	MeetsLevel    bool    `json:"meets_level"`
}

// runForeground executes the foreground command.
func runForeground(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	bg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid background colour: %w", err)
	}

	level, err := resolveLevel(nil)
	if err != nil {
		return err
	}

	if foregroundSurface != "" {
		surface, err := colour.ParseHex(foregroundSurface)
		if err != nil {
			return fmt.Errorf("invalid surface colour: %w", err)
		}
		bg = bg.Over(surface)
		logger.Debug("flattened background against surface", "result", bg.Hex())
	} else if bg.A < 1 {
		// Contrast is only defined against an opaque background.
		return fmt.Errorf("translucent colour requires --surface to flatten against")
	}

	bgLum := colour.RelativeLuminance(bg)
	whiteContrast := colour.ContrastRatio(bgLum, 1.0)
	blackContrast := colour.ContrastRatio(bgLum, 0.0)

	fg := colour.SelectForeground(bg, level)
	achieved := whiteContrast
	if fg == colour.ForegroundBlack {
		achieved = blackContrast
	}

	logger.Debug("selected foreground",
		"background", bg.Hex(),
		"luminance", fmt.Sprintf("%.4f", bgLum),
		"white_contrast", fmt.Sprintf("%.2f", whiteContrast),
		"black_contrast", fmt.Sprintf("%.2f", blackContrast),
		"level", level.String())

	switch foregroundFormat {
	case "json":
		result := foregroundResult{
			Background:    bg.Hex(),
			Foreground:    fg.String(),
			Level:         level.String(),
			Contrast:      achieved,
			WhiteContrast: whiteContrast,
			BlackContrast: blackContrast,
			MeetsLevel:    achieved >= level.Threshold(),
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
	case "text", "":
		if colour.PreviewsSupported() {
			printf("%s\n", colour.SwatchWithText(bg, fg.String(), 16, level))
		}
		fmt.Println(fg.String())
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", foregroundFormat)
	}

	return nil
}
