package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taskflow/tonal/internal/theme"
)

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme"+Extension)

	original := theme.Default()
	if err := original.SetColour("work", "#654321"); err != nil {
		t.Fatalf("SetColour failed: %v", err)
	}

	if err := Export(original, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	imported, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(imported.Categories) != len(original.Categories) {
		t.Fatalf("imported %d categories, want %d", len(imported.Categories), len(original.Categories))
	}
	cat, ok := imported.Category("work")
	if !ok {
		t.Fatal("work category missing after round trip")
	}
	if cat.Hex != "#654321" {
		t.Errorf("work hex = %q, want %q", cat.Hex, "#654321")
	}
	if imported.Level != original.Level {
		t.Errorf("level = %q, want %q", imported.Level, original.Level)
	}
}

func TestExportRejectsInvalidTheme(t *testing.T) {
	th := theme.Default()
	th.Categories[0].Hex = "nothex"

	path := filepath.Join(t.TempDir(), "bad"+Extension)
	if err := Export(th, path); err == nil {
		t.Error("Export of invalid theme succeeded, want error")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("invalid theme was written to disk")
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Import(filepath.Join(dir, "absent"+Extension)); err == nil {
			t.Error("Import of missing file succeeded, want error")
		}
	})

	t.Run("not xz data", func(t *testing.T) {
		path := filepath.Join(dir, "plain.theme.xz")
		if err := os.WriteFile(path, []byte(`{"version":1}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Import(path); err == nil {
			t.Error("Import of uncompressed file succeeded, want error")
		}
	})
}
