// Package suggest proposes category colour palettes using Google's
// generative models, post-processed so every suggestion is legible.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/taskflow/tonal/internal/colour"
)

const (
	// defaultModel is the model used when none is specified.
	defaultModel = "gemini-2.5-flash"

	// defaultBackend is the backend used when none is specified.
	defaultBackend = "gemini-api"
)

// Suggester asks a generative model for a category colour palette.
type Suggester struct {
	// Model is the generative model name.
	Model string

	// Backend selects between "gemini-api" and "vertex-ai".
	Backend string

	// Level is the conformance level suggestions are adjusted toward.
	Level colour.Level

	// Logger receives diagnostic output. Defaults to a no-op logger.
	Logger hclog.Logger
}

// New creates a Suggester with default settings.
func New() *Suggester {
	return &Suggester{
		Model:   defaultModel,
		Backend: defaultBackend,
		Level:   colour.LevelAAA,
		Logger:  hclog.NewNullLogger(),
	}
}

// Suggest requests one colour per category key, themed around the given
// mood, and nudges each returned colour until its selected foreground meets
// the configured level. Keys in the result match the input keys.
func (s *Suggester) Suggest(ctx context.Context, keys []string, mood string) (map[string]colour.RGBA, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no category keys provided")
	}

	client, err := s.clientSetup(ctx)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(keys, mood)
	s.Logger.Debug("requesting palette suggestion", "model", s.Model, "backend", s.Backend, "categories", len(keys))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	response, err := client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("palette suggestion failed: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return nil, fmt.Errorf("no text in model response")
	}
	s.Logger.Debug("received suggestion", "bytes", len(text))

	return s.parsePalette(text, keys)
}

// clientSetup configures and creates the Gen AI client.
func (s *Suggester) clientSetup(ctx context.Context) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{}

	if s.Backend == "vertex-ai" {
		clientConfig.Backend = genai.BackendVertexAI
	} else {
		clientConfig.Backend = genai.BackendGeminiAPI
	}

	// The Gemini API backend requires an API key.
	if clientConfig.Backend == genai.BackendGeminiAPI {
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
		}
		clientConfig.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	return client, nil
}

// BuildPrompt constructs the palette request sent to the model.
func BuildPrompt(keys []string, mood string) string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("Propose one background colour per category for a task-management app. ")
	if mood != "" {
		b.WriteString("The palette mood is: ")
		b.WriteString(mood)
		b.WriteString(". ")
	}
	b.WriteString("Colours should be distinct from each other and work as card backgrounds ")
	b.WriteString("behind white or black text. ")
	b.WriteString("Respond with a single JSON object mapping each category name to a ")
	b.WriteString("six-digit hex colour string, and nothing else. Categories: ")
	b.WriteString(strings.Join(sorted, ", "))
	b.WriteString(".")
	return b.String()
}

// responseText extracts the concatenated text parts of the first candidate.
func responseText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// parsePalette decodes the model's JSON palette and adjusts each colour
// toward compliance at the configured level. Every requested key must be
// present in the response.
func (s *Suggester) parsePalette(text string, keys []string) (map[string]colour.RGBA, error) {
	// Models occasionally wrap JSON in a code fence despite instructions.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}

	palette := make(map[string]colour.RGBA, len(keys))
	for _, key := range keys {
		hex, ok := raw[key]
		if !ok {
			return nil, fmt.Errorf("model response missing category %q", key)
		}
		c, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("model returned invalid colour for %q: %w", key, err)
		}
		palette[key] = colour.AdjustTowardCompliance(c, s.Level)
	}

	return palette, nil
}
