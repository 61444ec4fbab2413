package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/suggest"
	"github.com/taskflow/tonal/internal/theme"
)

var (
	// Suggest command flags
	suggestMood    string
	suggestModel   string
	suggestBackend string
	suggestApply   bool
	suggestDryRun  bool
	suggestFormat  string
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category palette using a generative model",
	Long: `Ask a generative model for a fresh colour palette covering the theme's
categories. Every suggested colour is adjusted until its selected text
colour meets the conformance level, so suggestions are always legible.

Requires the GOOGLE_API_KEY environment variable when using the
gemini-api backend. Get an API key at: https://aistudio.google.com/api-keys

Examples:
  # Suggest a palette for the saved theme's categories
  tonal suggest --mood "autumn forest"

  # Apply the suggestions to the saved theme
  tonal suggest --mood "ocean at dusk" --apply

  # Use a different model via Vertex AI
  tonal suggest --model gemini-2.5-pro --backend vertex-ai`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestMood, "mood", "m", "", "mood or style to theme the palette around")
	suggestCmd.Flags().StringVar(&suggestModel, "model", "gemini-2.5-flash", "generative model to use")
	suggestCmd.Flags().StringVar(&suggestBackend, "backend", "gemini-api", "backend to use (gemini-api, vertex-ai)")
	suggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "apply the suggested palette to the saved theme")
	suggestCmd.Flags().BoolVar(&suggestDryRun, "dry-run", false, "print the prompt without contacting the model")
	suggestCmd.Flags().StringVarP(&suggestFormat, "format", "f", "text", "output format (text, json)")
}

// runSuggest executes the suggest command.
func runSuggest(cmd *cobra.Command, args []string) error {
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

	keys := make([]string, 0, len(t.Categories))
	for _, cat := range t.Categories {
		keys = append(keys, cat.Key)
	}

	if suggestDryRun {
		fmt.Println(suggest.BuildPrompt(keys, suggestMood))
		return nil
	}

	s := suggest.New()
	s.Model = suggestModel
	s.Backend = suggestBackend
	s.Level = level
	s.Logger = logger

	palette, err := s.Suggest(cmd.Context(), keys, suggestMood)
	if err != nil {
		return err
	}

	switch suggestFormat {
	case "json":
		hexes := make(map[string]string, len(palette))
		for key, c := range palette {
			hexes[key] = c.Hex()
		}
		out, err := json.MarshalIndent(hexes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Println(string(out))
	case "text", "":
		previews := colour.PreviewsSupported()
		sorted := append([]string(nil), keys...)
		sort.Strings(sorted)
		for _, key := range sorted {
			c := palette[key]
			fg := colour.SelectForeground(c, level)
			if previews {
				printf("%s  %-10s %s  %s text\n",
					colour.SwatchWithText(c, key, 16, level), key, c.Hex(), fg.String())
			} else {
				printf("%-10s %s  %s text\n", key, c.Hex(), fg.String())
			}
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", suggestFormat)
	}

	if suggestApply {
		for key, c := range palette {
			if err := t.SetColour(key, c.Hex()); err != nil {
				return err
			}
		}
		if err := theme.Save(t, path); err != nil {
			return err
		}
		printf("Applied %d colours to %s\n", len(palette), path)
	}

	return nil
}
