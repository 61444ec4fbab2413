package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/image"
)

var (
	// Sample command flags
	sampleMethod string
	sampleCentre bool
	sampleFormat string
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <image>",
	Short: "Sample a background colour from an attachment image",
	Long: `Sample a candidate background colour from an image, then select the
legible text colour for it. This is how overlay text on attachment
thumbnails gets its colour.

Two sampling methods are available: "average" blends every pixel in the
region, "dominant" picks the most frequent colour after quantisation.
With --centre only the central region is sampled, which matches where
overlay text is usually rendered.

Supported formats: JPEG, PNG, GIF, WebP.

Examples:
  # Average colour of a whole image
  tonal sample photo.jpg

  # Dominant colour of the central region
  tonal sample --method dominant --centre photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleMethod, "method", "m", "average", "sampling method (average, dominant)")
	sampleCmd.Flags().BoolVar(&sampleCentre, "centre", false, "sample only the central region of the image")
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", "text", "output format (text, json)")
}

// sampleResult is the JSON shape of a sample run.
type sampleResult struct {
	Path       string  `json:"path"`
	Method     string  `json:"method"`
	Sampled    string  `json:"sampled"`
	Foreground string  `json:"foreground"`
	Contrast   float64 `json:"contrast"`
	Level      string  `json:"level"`
}

// runSample executes the sample command.
func runSample(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	path := args[0]

	method, err := image.ParseMethod(sampleMethod)
	if err != nil {
		return err
	}

	level, err := resolveLevel(nil)
	if err != nil {
		return err
	}

	img, err := image.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded image", "path", path, "bounds", img.Bounds().String())

	sampler := &image.Sampler{Method: method, CentreWeighted: sampleCentre}
	sampled, err := sampler.Sample(img)
	if err != nil {
		return err
	}

	fg := colour.SelectForeground(sampled, level)
	ratio := colour.Contrast(sampled, fg.RGBA())

	logger.Debug("sampled colour",
		"colour", sampled.Hex(),
		"method", string(method),
		"foreground", fg.String(),
		"contrast", fmt.Sprintf("%.2f", ratio))

	switch sampleFormat {
	case "json":
		result := sampleResult{
			Path:       path,
			Method:     string(method),
			Sampled:    sampled.Hex(),
			Foreground: fg.String(),
			Contrast:   ratio,
			Level:      level.String(),
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
	case "text", "":
		if colour.PreviewsSupported() {
			printf("%s\n", colour.SwatchWithText(sampled, fg.String(), 16, level))
		}
		printf("%s  %s text  %.2f:1\n", sampled.Hex(), fg.String(), ratio)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", sampleFormat)
	}

	return nil
}
