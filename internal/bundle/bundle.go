// Package bundle exports and imports themes as xz-compressed JSON bundles,
// the interchange format for sharing category colour schemes.
package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"

	"github.com/taskflow/tonal/internal/security"
	"github.com/taskflow/tonal/internal/theme"
)

// maxBundleSize caps decompressed bundle size. Theme files are tiny; anything
// near this limit is not a theme.
const maxBundleSize = 4 * 1024 * 1024

// Extension is the conventional bundle file extension.
const Extension = ".theme.xz"

// Export writes the theme to an xz-compressed bundle at the given path.
// The theme is validated before anything is written.
func Export(t *theme.Theme, path string) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("refusing to export invalid theme: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to compress theme: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalise bundle: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create bundle directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { // #nosec G306 - Bundle file is not sensitive
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	return nil
}

// Import reads and validates a theme from an xz-compressed bundle.
// Decompression is size-limited to guard against hostile bundles.
func Import(path string) (*theme.Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified bundle file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle (not an xz file?): %w", err)
	}

	limited := security.NewLimitedReader(r, maxBundleSize)
	decompressed, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bundle: %w", err)
	}

	var t theme.Theme
	if err := json.Unmarshal(decompressed, &t); err != nil {
		return nil, fmt.Errorf("failed to parse bundle contents: %w", err)
	}
	if t.Level == "" {
		t.Level = "aaa"
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme in bundle: %w", err)
	}

	return &t, nil
}
