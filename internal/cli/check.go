package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/colour"
)

var (
	// Check command flags
	checkFormat string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <background> <foreground>...",
	Short: "Check foreground colours against a background",
	Long: `Check one or more foreground colours against a background colour and
report whether each pairing meets the conformance level's contrast
threshold.

The command exits non-zero if any pairing fails, so it can gate a theme
change in scripts.

Examples:
  # Check a single pairing
  tonal check "#d74100" "#ffffff"

  # Check both fixed foregrounds at once
  tonal check --level aa "#d74100" "#ffffff" "#000000"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
}

// checkResult is the JSON shape of a single pairing check.
type checkResult struct {
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Contrast   float64 `json:"contrast"`
	Level      string  `json:"level"`
	Passes     bool    `json:"passes"`
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	bg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid background colour: %w", err)
	}

	level, err := resolveLevel(nil)
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, len(args)-1)
	failures := 0
	for _, arg := range args[1:] {
		fg, err := colour.ParseHex(arg)
		if err != nil {
			return fmt.Errorf("invalid foreground colour %q: %w", arg, err)
		}

		ratio := colour.Contrast(bg, fg)
		passes := ratio >= level.Threshold()
		if !passes {
			failures++
		}

		logger.Debug("checked pairing",
			"background", bg.Hex(),
			"foreground", fg.Hex(),
			"contrast", fmt.Sprintf("%.2f", ratio),
			"passes", passes)

		results = append(results, checkResult{
			Background: bg.Hex(),
			Foreground: fg.Hex(),
			Contrast:   ratio,
			Level:      level.String(),
			Passes:     passes,
		})
	}

	switch checkFormat {
	case "json":
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(out))
	case "text", "":
		for _, r := range results {
			verdict := "PASS"
			if !r.Passes {
				verdict = "FAIL"
			}
			printf("%s on %s  %5.2f:1  %s (%s)\n",
				r.Foreground, r.Background, r.Contrast, verdict, r.Level)
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", checkFormat)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d pairings below the %s threshold", failures, len(results), level)
	}
	return nil
}
