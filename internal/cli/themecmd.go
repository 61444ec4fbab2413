package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/bundle"
	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/theme"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the category colour theme",
	Long: `Manage the saved category colour theme: initialise it with the default
palette, show or change category colours, and share themes as
compressed bundles.

Examples:
  tonal theme init
  tonal theme show
  tonal theme set work "#b03400"
  tonal theme export autumn.theme.xz
  tonal theme import autumn.theme.xz`,
}

// themeInitCmd represents the theme init command
var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default theme to the theme file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := themePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("theme file already exists: %s", path)
		}
		if err := theme.Save(theme.Default(), path); err != nil {
			return err
		}
		printf("Wrote default theme to %s\n", path)
		return nil
	},
}

// themeShowCmd represents the theme show command
var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the theme's categories and their text colours",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		previews := colour.PreviewsSupported()
		printf("Theme level: %s\n\n", t.Level)
		for _, cat := range t.Categories {
			c, err := cat.Colour()
			if err != nil {
				return err
			}
			fg := colour.SelectForeground(c, level)
			if previews {
				printf("%s  %-10s %s  %s text\n",
					colour.SwatchWithText(c, cat.Label, 16, level), cat.Key, c.Hex(), fg.String())
			} else {
				printf("%-10s %s  %s text\n", cat.Key, c.Hex(), fg.String())
			}
		}
		return nil
	},
}

// themeSetCmd represents the theme set command
var themeSetCmd = &cobra.Command{
	Use:   "set <key> <colour>",
	Short: "Set a category's colour and save the theme",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		key, hex := args[0], args[1]
		if err := t.SetColour(key, hex); err != nil {
			return err
		}
		if err := theme.Save(t, path); err != nil {
			return err
		}

		cat, _ := t.Category(key)
		c, err := cat.Colour()
		if err != nil {
			return err
		}
		fg := colour.SelectForeground(c, level)
		ratio := colour.Contrast(c, fg.RGBA())
		logger.Debug("set category colour", "key", key, "colour", c.Hex(), "path", path)

		printf("%s = %s  %s text  %.2f:1\n", key, c.Hex(), fg.String(), ratio)
		if ratio < level.Threshold() {
			printf("warning: best foreground only reaches %.2f:1, below the %s threshold of %.1f:1\n",
				ratio, level, level.Threshold())
			printf("         try %s\n", colour.AdjustTowardCompliance(c, level).Hex())
		}
		return nil
	},
}

// themeExportCmd represents the theme export command
var themeExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the theme as a compressed bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := themePath()
		if err != nil {
			return err
		}
		t, err := theme.LoadOrDefault(path)
		if err != nil {
			return err
		}
		if err := bundle.Export(t, args[0]); err != nil {
			return err
		}
		printf("Exported %d categories to %s\n", len(t.Categories), args[0])
		return nil
	},
}

// themeImportCmd represents the theme import command
var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a theme bundle, replacing the saved theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := bundle.Import(args[0])
		if err != nil {
			return err
		}
		path, err := themePath()
		if err != nil {
			return err
		}
		if err := theme.Save(t, path); err != nil {
			return err
		}
		printf("Imported %d categories to %s\n", len(t.Categories), path)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeInitCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
}
