package cli

import (
	"testing"

	"github.com/taskflow/tonal/internal/colour"
	"github.com/taskflow/tonal/internal/theme"
)

func TestNormalizeFlagName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no-colour", "no-color"},
		{"no-color", "no-color"},
		{"level", "level"},
	}

	for _, tt := range tests {
		got := normalizeFlagName(nil, tt.in)
		if string(got) != tt.want {
			t.Errorf("normalizeFlagName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveLevelPrecedence(t *testing.T) {
	orig := globalLevel
	defer func() { globalLevel = orig }()

	// Explicit flag wins over the theme setting.
	globalLevel = "aa"
	th := theme.Default()
	level, err := resolveLevel(th)
	if err != nil {
		t.Fatalf("resolveLevel failed: %v", err)
	}
	if level != colour.LevelAA {
		t.Errorf("explicit --level aa resolved to %s", level)
	}

	// Without the flag, the theme's configured level applies.
	globalLevel = ""
	level, err = resolveLevel(th)
	if err != nil {
		t.Fatalf("resolveLevel failed: %v", err)
	}
	if level != colour.LevelAAA {
		t.Errorf("theme level aaa resolved to %s", level)
	}

	// Without a theme either, AAA is the default.
	level, err = resolveLevel(nil)
	if err != nil {
		t.Fatalf("resolveLevel failed: %v", err)
	}
	if level != colour.LevelAAA {
		t.Errorf("default level resolved to %s", level)
	}

	globalLevel = "gold"
	if _, err := resolveLevel(nil); err == nil {
		t.Error("unrecognised level accepted")
	}
}
