package theme

import (
	"testing"
)

func TestDefaultThemeIsValid(t *testing.T) {
	th := Default()
	if err := th.Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
	if len(th.Categories) == 0 {
		t.Fatal("default theme has no categories")
	}
	if _, err := th.ConformanceLevel(); err != nil {
		t.Errorf("default theme level invalid: %v", err)
	}
}

func TestCategoryLookup(t *testing.T) {
	th := Default()

	cat, ok := th.Category("work")
	if !ok {
		t.Fatal("Category(work) not found in default theme")
	}
	if cat.Hex != "#d74100" {
		t.Errorf("work category hex = %q, want %q", cat.Hex, "#d74100")
	}

	if _, ok := th.Category("nonexistent"); ok {
		t.Error("Category(nonexistent) unexpectedly found")
	}
}

func TestSetColour(t *testing.T) {
	t.Run("update existing", func(t *testing.T) {
		th := Default()
		if err := th.SetColour("work", "#336699"); err != nil {
			t.Fatalf("SetColour failed: %v", err)
		}
		cat, _ := th.Category("work")
		if cat.Hex != "#336699" {
			t.Errorf("work hex = %q, want %q", cat.Hex, "#336699")
		}
	})

	t.Run("append new category", func(t *testing.T) {
		th := Default()
		before := len(th.Categories)
		if err := th.SetColour("travel", "#abc"); err != nil {
			t.Fatalf("SetColour failed: %v", err)
		}
		if len(th.Categories) != before+1 {
			t.Fatalf("categories = %d, want %d", len(th.Categories), before+1)
		}
		cat, ok := th.Category("travel")
		if !ok {
			t.Fatal("new category not found")
		}
		// Shorthand hex is normalised on write.
		if cat.Hex != "#aabbcc" {
			t.Errorf("travel hex = %q, want %q", cat.Hex, "#aabbcc")
		}
	})

	t.Run("invalid colour rejected", func(t *testing.T) {
		th := Default()
		if err := th.SetColour("work", "notahex"); err == nil {
			t.Error("SetColour with invalid hex succeeded, want error")
		}
		cat, _ := th.Category("work")
		if cat.Hex != "#d74100" {
			t.Errorf("failed SetColour modified theme: hex = %q", cat.Hex)
		}
	})
}

func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr bool
	}{
		{name: "default passes", mutate: func(*Theme) {}},
		{
			name:    "empty key",
			mutate:  func(th *Theme) { th.Categories[0].Key = "" },
			wantErr: true,
		},
		{
			name:    "duplicate key",
			mutate:  func(th *Theme) { th.Categories[1].Key = th.Categories[0].Key },
			wantErr: true,
		},
		{
			name:    "bad colour",
			mutate:  func(th *Theme) { th.Categories[0].Hex = "purple" },
			wantErr: true,
		},
		{
			name:    "bad level",
			mutate:  func(th *Theme) { th.Level = "aaaa" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Default()
			tt.mutate(th)
			err := th.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() succeeded, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}
