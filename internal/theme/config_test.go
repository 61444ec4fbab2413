package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")

	original := Default()
	if err := original.SetColour("work", "#123456"); err != nil {
		t.Fatalf("SetColour failed: %v", err)
	}

	if err := Save(original, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Version != CurrentVersion {
		t.Errorf("loaded version = %d, want %d", loaded.Version, CurrentVersion)
	}
	if loaded.Level != original.Level {
		t.Errorf("loaded level = %q, want %q", loaded.Level, original.Level)
	}
	if len(loaded.Categories) != len(original.Categories) {
		t.Fatalf("loaded %d categories, want %d", len(loaded.Categories), len(original.Categories))
	}
	cat, _ := loaded.Category("work")
	if cat.Hex != "#123456" {
		t.Errorf("work hex after round trip = %q, want %q", cat.Hex, "#123456")
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "theme.json")

	if err := Save(Default(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("theme file not created: %v", err)
	}
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	th := Default()
	th.Categories[0].Hex = "notacolour"

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := Save(th, path); err == nil {
		t.Error("Save of invalid theme succeeded, want error")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("invalid theme was written to disk")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.json")); err == nil {
			t.Error("Load of missing file succeeded, want error")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load of malformed file succeeded, want error")
		}
	})

	t.Run("future version", func(t *testing.T) {
		path := filepath.Join(dir, "future.json")
		content := `{"version": 99, "level": "aaa", "categories": [{"key": "work", "label": "Work", "hex": "#d74100"}]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load of future version succeeded, want error")
		}
	})

	t.Run("missing level defaults to aaa", func(t *testing.T) {
		path := filepath.Join(dir, "nolevel.json")
		content := `{"version": 1, "categories": [{"key": "work", "label": "Work", "hex": "#d74100"}]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		th, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if th.Level != "aaa" {
			t.Errorf("level = %q, want %q", th.Level, "aaa")
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file falls back to default", func(t *testing.T) {
		th, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
		if err != nil {
			t.Fatalf("LoadOrDefault failed: %v", err)
		}
		if len(th.Categories) != len(Default().Categories) {
			t.Error("fallback theme is not the default theme")
		}
	})

	t.Run("broken file is still an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Error("LoadOrDefault of malformed file succeeded, want error")
		}
	})
}
