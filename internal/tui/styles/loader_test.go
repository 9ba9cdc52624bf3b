package styles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/httpdex/httpdex/internal/theme"
)

const validPalette = `name: Test Dark
version: "1"
colors:
  primary: "#FF0000"
  categories:
    success: "#00FF00"
`

func writePalette(t *testing.T, dir string, v theme.Variant, content string) string {
	t.Helper()
	path := PalettePath(dir, v)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPaletteFile(t *testing.T) {
	path := writePalette(t, t.TempDir(), theme.Dark, validPalette)

	pf, err := LoadPaletteFile(path)
	if err != nil {
		t.Fatalf("LoadPaletteFile() error: %v", err)
	}
	if pf.Name != "Test Dark" {
		t.Errorf("Name = %q, want %q", pf.Name, "Test Dark")
	}
	if pf.Colors.Primary != "#FF0000" {
		t.Errorf("Colors.Primary = %q, want #FF0000", pf.Colors.Primary)
	}
}

func TestPaletteFileValidate(t *testing.T) {
	tests := []struct {
		name    string
		pf      PaletteFile
		wantErr string
	}{
		{
			name:    "missing name",
			pf:      PaletteFile{Version: "1"},
			wantErr: "name is required",
		},
		{
			name:    "missing version",
			pf:      PaletteFile{Name: "x"},
			wantErr: "version is required",
		},
		{
			name:    "unsupported version",
			pf:      PaletteFile{Name: "x", Version: "2"},
			wantErr: "unsupported palette version",
		},
		{
			name:    "bad hex color",
			pf:      PaletteFile{Name: "x", Version: "1", Colors: PaletteColors{Primary: "red"}},
			wantErr: "invalid format",
		},
		{
			name: "short hex is accepted",
			pf:   PaletteFile{Name: "x", Version: "1", Colors: PaletteColors{Primary: "#F00"}},
		},
		{
			name: "empty colors are accepted",
			pf:   PaletteFile{Name: "x", Version: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pf.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyOverridesOnlySetColors(t *testing.T) {
	pf := PaletteFile{
		Name:    "x",
		Version: "1",
		Colors: PaletteColors{
			Primary:    "#FF0000",
			Categories: PaletteCategoryColors{Success: "#00FF00"},
		},
	}

	base := Dark()
	got := pf.Apply(base)

	if got.Primary != lipgloss.Color("#FF0000") {
		t.Errorf("Primary = %v, want override", got.Primary)
	}
	if got.Success != lipgloss.Color("#00FF00") {
		t.Errorf("Success = %v, want override", got.Success)
	}
	// Untouched slots keep the built-in color.
	if got.Error != base.Error {
		t.Errorf("Error = %v, want base %v", got.Error, base.Error)
	}
	if got.ServerError != base.ServerError {
		t.Errorf("ServerError = %v, want base %v", got.ServerError, base.ServerError)
	}
}

func TestResolve(t *testing.T) {
	t.Run("missing file returns builtin", func(t *testing.T) {
		p, err := Resolve(t.TempDir(), theme.Dark)
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if p != Dark() {
			t.Error("missing palette file should return the built-in palette")
		}
	})

	t.Run("custom file overrides", func(t *testing.T) {
		dir := t.TempDir()
		writePalette(t, dir, theme.Light, "name: Custom Light\nversion: \"1\"\ncolors:\n  text: \"#000000\"\n")

		p, err := Resolve(dir, theme.Light)
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if p.Text != lipgloss.Color("#000000") {
			t.Errorf("Text = %v, want override", p.Text)
		}
	})

	t.Run("malformed file reports error and keeps builtin", func(t *testing.T) {
		dir := t.TempDir()
		writePalette(t, dir, theme.Dark, "name: Broken\nversion: \"1\"\ncolors:\n  primary: \"purple\"\n")

		p, err := Resolve(dir, theme.Dark)
		if err == nil {
			t.Fatal("Resolve() should report the malformed palette")
		}
		if p != Dark() {
			t.Error("malformed palette should fall back to the built-in palette")
		}
	})
}
