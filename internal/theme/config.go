package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath returns the default theme file location under the user's
// config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "tonal", "theme.json"), nil
}

// Load reads and validates a theme from the given path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified theme file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if t.Version > CurrentVersion {
		return nil, fmt.Errorf("theme file version %d is newer than supported version %d", t.Version, CurrentVersion)
	}
	if t.Level == "" {
		// Older files without a level default to AAA.
		t.Level = "aaa"
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme file: %w", err)
	}

	return &t, nil
}

// LoadOrDefault loads the theme at path, falling back to the built-in theme
// when no file exists. Any other read or validation failure is an error.
func LoadOrDefault(path string) (*Theme, error) {
	t, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return t, nil
}

// Save writes the theme to the given path, creating parent directories as
// needed. The theme is validated before anything is written.
func Save(t *Theme, path string) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid theme: %w", err)
	}

	t.Version = CurrentVersion

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Theme file is not sensitive
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}
