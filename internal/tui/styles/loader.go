package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/httpdex/httpdex/internal/theme"
)

// PaletteFile is a custom palette definition loaded from YAML. A file named
// after a variant ("dark.yaml" or "light.yaml") in the themes directory
// overrides the built-in palette for that variant. All colors are optional;
// unset colors keep the built-in value.
type PaletteFile struct {
	// Name is the palette's display name (e.g., "Gruvbox Dark")
	Name string `yaml:"name"`
	// Version is the palette file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the overridden colors, hex format (#RRGGBB or #RGB)
	Colors PaletteColors `yaml:"colors"`
}

// PaletteColors contains the overridable color slots.
type PaletteColors struct {
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
	Warning   string `yaml:"warning,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Muted     string `yaml:"muted,omitempty"`
	Surface   string `yaml:"surface,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Border    string `yaml:"border,omitempty"`

	Categories PaletteCategoryColors `yaml:"categories,omitempty"`
}

// PaletteCategoryColors defines the per-category badge colors.
type PaletteCategoryColors struct {
	Informational string `yaml:"informational,omitempty"`
	Success       string `yaml:"success,omitempty"`
	Redirection   string `yaml:"redirection,omitempty"`
	ClientError   string `yaml:"client_error,omitempty"`
	ServerError   string `yaml:"server_error,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadPaletteFile loads a custom palette from a YAML file.
func LoadPaletteFile(path string) (*PaletteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}

	var pf PaletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing palette file: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	return &pf, nil
}

// Validate checks that the palette file is well-formed.
func (pf *PaletteFile) Validate() error {
	if pf.Name == "" {
		return errors.New("palette name is required")
	}
	if pf.Version == "" {
		return errors.New("palette version is required")
	}
	if pf.Version != "1" {
		return fmt.Errorf("unsupported palette version: %s (supported: 1)", pf.Version)
	}

	colors := map[string]string{
		"primary":                  pf.Colors.Primary,
		"secondary":                pf.Colors.Secondary,
		"warning":                  pf.Colors.Warning,
		"error":                    pf.Colors.Error,
		"muted":                    pf.Colors.Muted,
		"surface":                  pf.Colors.Surface,
		"text":                     pf.Colors.Text,
		"border":                   pf.Colors.Border,
		"categories.informational": pf.Colors.Categories.Informational,
		"categories.success":       pf.Colors.Categories.Success,
		"categories.redirection":   pf.Colors.Categories.Redirection,
		"categories.client_error":  pf.Colors.Categories.ClientError,
		"categories.server_error":  pf.Colors.Categories.ServerError,
	}

	for name, color := range colors {
		if color != "" && !hexColorRegex.MatchString(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// Apply overlays the file's colors onto a base palette.
func (pf *PaletteFile) Apply(base Palette) Palette {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}

	set(&base.Primary, pf.Colors.Primary)
	set(&base.Secondary, pf.Colors.Secondary)
	set(&base.Warning, pf.Colors.Warning)
	set(&base.Error, pf.Colors.Error)
	set(&base.Muted, pf.Colors.Muted)
	set(&base.Surface, pf.Colors.Surface)
	set(&base.Text, pf.Colors.Text)
	set(&base.Border, pf.Colors.Border)

	set(&base.Informational, pf.Colors.Categories.Informational)
	set(&base.Success, pf.Colors.Categories.Success)
	set(&base.Redirection, pf.Colors.Categories.Redirection)
	set(&base.ClientError, pf.Colors.Categories.ClientError)
	set(&base.ServerError, pf.Colors.Categories.ServerError)

	return base
}

// PalettePath returns where the custom palette for a variant lives under
// the config directory.
func PalettePath(configDir string, v theme.Variant) string {
	return filepath.Join(configDir, "themes", string(v)+".yaml")
}

// Resolve returns the palette for a variant, with any custom palette file
// under configDir applied on top of the built-in one. A missing file is
// not an error; a malformed file is reported and the built-in palette is
// returned unchanged.
func Resolve(configDir string, v theme.Variant) (Palette, error) {
	base := ForVariant(v)

	path := PalettePath(configDir, v)
	if _, err := os.Stat(path); err != nil {
		return base, nil
	}

	pf, err := LoadPaletteFile(path)
	if err != nil {
		return base, err
	}
	return pf.Apply(base), nil
}
