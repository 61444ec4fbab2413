// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/theme"
	"github.com/taskflow/tonal/internal/version"
)

var (
	// Global flags
	globalVerbose   bool
	globalQuiet     bool
	globalNoColor   bool
	globalLevel     string
	globalThemeFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "tonal",
		Short: "Legible text colours for TaskFlow category themes",
		Long: `Tonal keeps TaskFlow category colours readable.

It selects white or black text for any background colour using WCAG
contrast rules, audits whole category themes for compliance, samples
candidate backgrounds from attachment images, and shares themes as
compressed bundles.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			colour.DisablePreviews = globalNoColor
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "disable colour previews in output")
	rootCmd.PersistentFlags().StringVarP(&globalLevel, "level", "l", "", "WCAG conformance level (aa, aaa; default: theme setting or aaa)")
	rootCmd.PersistentFlags().StringVar(&globalThemeFile, "theme-file", "", "path to theme file (default: user config directory)")

	// Accept both spellings of colour-related flag names.
	rootCmd.PersistentFlags().SetNormalizeFunc(normalizeFlagName)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(foregroundCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(suggestCmd)
}

// normalizeFlagName maps British flag spellings onto their registered names.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "colour") {
		name = strings.ReplaceAll(name, "colour", "color")
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the diagnostic logger for a command invocation.
// Verbose runs log at debug level; otherwise logging is off.
func newLogger() hclog.Logger {
	level := hclog.Off
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: os.Stderr,
		Level:  level,
	})
}

// themePath resolves the theme file location from the global flag or the
// user config directory.
func themePath() (string, error) {
	if globalThemeFile != "" {
		return globalThemeFile, nil
	}
	return theme.DefaultPath()
}

// resolveLevel picks the conformance level for a command: an explicit
// --level always wins, then the theme's configured level, then AAA.
func resolveLevel(t *theme.Theme) (colour.Level, error) {
	if globalLevel != "" {
		return colour.ParseLevel(globalLevel)
	}
	if t != nil {
		return t.ConformanceLevel()
	}
	return colour.LevelAAA, nil
}

// printf writes to stdout unless --quiet is set.
func printf(format string, args ...any) {
	if globalQuiet {
		return
	}
	fmt.Printf(format, args...)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
