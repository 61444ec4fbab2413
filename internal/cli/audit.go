package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/theme"
)

var (
	// Audit command flags
	auditFormat string
	auditFix    bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the category theme for contrast compliance",
	Long: `Audit every category colour in the theme against both white and black
text and report the selected foreground, the achieved contrast ratio,
and AA/AAA verdicts.

Failing categories get a suggested replacement that keeps the hue and
shifts lightness until the colour complies. With --fix the suggestions
are applied and the theme is saved.

The command exits non-zero when the theme is not compliant at the
audited level, so it can run in CI.

Examples:
  # Audit the saved theme at its configured level
  tonal audit

  # Audit at AA and repair failures in place
  tonal audit --level aa --fix

  # Machine-readable report
  tonal audit --format json`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "text", "output format (text, json)")
	auditCmd.Flags().BoolVar(&auditFix, "fix", false, "apply suggested colours to failing categories and save")
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	path, err := themePath()
	if err != nil {
		return err
	}

	t, err := theme.LoadOrDefault(path)
	if err != nil {
		return err
	}

	level, err := resolveLevel(t)
	if err != nil {
		return err
	}
	logger.Debug("auditing theme", "path", path, "level", level.String(), "categories", len(t.Categories))

	report, err := theme.Audit(t, level)
	if err != nil {
		return err
	}

	if auditFix {
		changed, err := theme.ApplySuggestions(t, report)
		if err != nil {
			return err
		}
		if changed > 0 {
			if err := theme.Save(t, path); err != nil {
				return err
			}
			printf("Applied %d suggestion(s), saved %s\n", changed, path)
			// Re-audit so the report reflects the repaired theme.
			report, err = theme.Audit(t, level)
			if err != nil {
				return err
			}
		} else {
			printf("Nothing to fix\n")
		}
	}

	switch auditFormat {
	case "json":
		out, err := report.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(out))
	case "text", "":
		printAuditReport(report)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", auditFormat)
	}

	if !report.Compliant() {
		return fmt.Errorf("theme is not compliant at level %s", report.Level)
	}
	return nil
}

// printAuditReport renders the audit report as a text table.
func printAuditReport(report *theme.Report) {
	previews := colour.PreviewsSupported()
	level, err := colour.ParseLevel(report.Level)
	if err != nil {
		level = colour.LevelAAA
	}

	printf("Contrast audit (level %s)\n\n", report.Level)
	for _, e := range report.Entries {
		verdict := "FAIL"
		switch {
		case e.PassesAAA:
			verdict = "AAA"
		case e.PassesAA:
			verdict = "AA"
		}

		line := fmt.Sprintf("%-10s %s  %s text  %5.2f:1  %s",
			e.Key, e.Hex, e.Foreground, e.Contrast, verdict)

		if previews {
			if c, err := colour.ParseHex(e.Hex); err == nil {
				line = fmt.Sprintf("%s  %s", colour.SwatchWithText(c, e.Label, 16, level), line)
			}
		}
		printf("%s\n", line)

		if e.Suggested != "" {
			printf("%-10s suggest %s\n", "", e.Suggested)
		}
	}
}
