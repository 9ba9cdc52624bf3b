package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/httpdex/httpdex/internal/status"
	"github.com/httpdex/httpdex/internal/theme"
)

// Palette is the set of colors one theme variant renders with.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Border    lipgloss.Color

	// Category badge colors
	Informational lipgloss.Color
	Success       lipgloss.Color
	Redirection   lipgloss.Color
	ClientError   lipgloss.Color
	ServerError   lipgloss.Color
}

// Dark returns the dark palette, the default variant.
func Dark() Palette {
	return Palette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray (gray-500)

		Informational: lipgloss.Color("#60A5FA"), // Blue
		Success:       lipgloss.Color("#10B981"), // Green
		Redirection:   lipgloss.Color("#FBBF24"), // Yellow
		ClientError:   lipgloss.Color("#FB923C"), // Orange
		ServerError:   lipgloss.Color("#F87171"), // Red
	}
}

// Light returns the light palette.
func Light() Palette {
	return Palette{
		Primary:   lipgloss.Color("#6D28D9"), // Purple (violet-700)
		Secondary: lipgloss.Color("#047857"), // Green (emerald-700)
		Warning:   lipgloss.Color("#B45309"), // Amber (amber-700)
		Error:     lipgloss.Color("#B91C1C"), // Red (red-700)
		Muted:     lipgloss.Color("#6B7280"), // Gray (gray-500)
		Surface:   lipgloss.Color("#E5E7EB"), // Light surface
		Text:      lipgloss.Color("#111827"), // Dark text
		Border:    lipgloss.Color("#9CA3AF"), // Gray (gray-400)

		Informational: lipgloss.Color("#1D4ED8"), // Blue (blue-700)
		Success:       lipgloss.Color("#047857"), // Green
		Redirection:   lipgloss.Color("#A16207"), // Yellow (yellow-700)
		ClientError:   lipgloss.Color("#C2410C"), // Orange (orange-700)
		ServerError:   lipgloss.Color("#B91C1C"), // Red
	}
}

// ForVariant returns the built-in palette for a theme variant.
func ForVariant(v theme.Variant) Palette {
	if v == theme.Light {
		return Light()
	}
	return Dark()
}

// CategoryColor returns the badge color for a category. Categories outside
// the enumeration fall back to the muted color.
func (p Palette) CategoryColor(cat status.Category) lipgloss.Color {
	switch cat {
	case status.CategoryInformational:
		return p.Informational
	case status.CategorySuccess:
		return p.Success
	case status.CategoryRedirection:
		return p.Redirection
	case status.CategoryClientError:
		return p.ClientError
	case status.CategoryServerError:
		return p.ServerError
	}
	return p.Muted
}
