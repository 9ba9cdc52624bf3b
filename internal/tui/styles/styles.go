// Package styles holds the lipgloss styling for the httpdex TUI. A Styles
// value is derived from a Palette, which in turn is selected by the active
// theme variant and optionally overridden by a custom YAML palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/httpdex/httpdex/internal/status"
)

// Styles is the full set of render styles for one palette.
type Styles struct {
	palette Palette

	Title     lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	HelpKey   lipgloss.Style
	HelpLabel lipgloss.Style

	Code        lipgloss.Style
	Symbol      lipgloss.Style
	Reference   lipgloss.Style
	SelectedRow lipgloss.Style

	SearchPrompt lipgloss.Style
	SearchInput  lipgloss.Style

	SectionHeader lipgloss.Style
	CopiedFlash   lipgloss.Style
	ErrorBanner   lipgloss.Style

	Checkbox      lipgloss.Style
	CheckboxEmpty lipgloss.Style
	PanelBox      lipgloss.Style
}

// New derives a Styles value from a palette.
func New(p Palette) Styles {
	return Styles{
		palette: p,

		Title:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Header:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		HelpKey:   lipgloss.NewStyle().Foreground(p.Secondary),
		HelpLabel: lipgloss.NewStyle().Foreground(p.Muted),

		Code:        lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Symbol:      lipgloss.NewStyle().Foreground(p.Secondary),
		Reference:   lipgloss.NewStyle().Foreground(p.Muted).Underline(true),
		SelectedRow: lipgloss.NewStyle().Background(p.Surface).Bold(true),

		SearchPrompt: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		SearchInput:  lipgloss.NewStyle().Foreground(p.Warning),

		SectionHeader: lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true),
		CopiedFlash:   lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),

		Checkbox:      lipgloss.NewStyle().Foreground(p.Secondary),
		CheckboxEmpty: lipgloss.NewStyle().Foreground(p.Muted),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}

// CategoryBadge returns the style for a category badge.
func (s Styles) CategoryBadge(cat status.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.CategoryColor(cat)).Bold(true)
}

// Palette returns the palette this Styles was derived from.
func (s Styles) Palette() Palette {
	return s.palette
}
