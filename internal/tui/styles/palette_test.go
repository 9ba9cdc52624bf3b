package styles

import (
	"testing"

	"github.com/httpdex/httpdex/internal/status"
	"github.com/httpdex/httpdex/internal/theme"
)

func TestForVariant(t *testing.T) {
	if ForVariant(theme.Dark) != Dark() {
		t.Error("ForVariant(dark) should return the dark palette")
	}
	if ForVariant(theme.Light) != Light() {
		t.Error("ForVariant(light) should return the light palette")
	}
	// Anything unrecognized behaves as dark, matching the theme default.
	if ForVariant(theme.Variant("sepia")) != Dark() {
		t.Error("unknown variant should fall back to dark")
	}
}

func TestCategoryColorDistinct(t *testing.T) {
	for _, p := range []Palette{Dark(), Light()} {
		seen := make(map[string]status.Category)
		for _, cat := range status.Categories() {
			c := string(p.CategoryColor(cat))
			if prev, dup := seen[c]; dup {
				t.Errorf("categories %v and %v share color %s", prev, cat, c)
			}
			seen[c] = cat
		}
	}
}

func TestCategoryColorUnknownFallsBackToMuted(t *testing.T) {
	p := Dark()
	if p.CategoryColor(status.CategoryUnknown) != p.Muted {
		t.Error("unknown category should use the muted color")
	}
}

func TestNewStylesCarryPalette(t *testing.T) {
	p := Light()
	s := New(p)
	if s.Palette() != p {
		t.Error("Styles should retain the palette it was built from")
	}
}
