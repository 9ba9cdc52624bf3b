package util

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short message unchanged", "Not Found", 35, "Not Found"},
		{"exact length unchanged", "Gone", 4, "Gone"},
		{"long message truncated", "Request Header Fields Too Large", 20, "Request Header Fi..."},
		{"tiny budget returns ellipsis", "OK", 3, "..."},
		{"zero budget returns ellipsis", "OK", 0, "..."},
		{"empty string unchanged", "", 10, ""},
		{"wide runes counted as runes", "日本語テスト", 5, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSIPreservesStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Internal Server Error")

	got := TruncateANSI(styled, 12)
	if lipgloss.Width(got) > 12 {
		t.Errorf("truncated width = %d, want <= 12", lipgloss.Width(got))
	}
	if !strings.HasSuffix(stripTrailingReset(got), "...") && !strings.Contains(got, "...") {
		t.Errorf("truncated string %q should carry an ellipsis", got)
	}
}

func TestTruncateANSIShortUnchanged(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("200 OK")
	if got := TruncateANSI(styled, 40); got != styled {
		t.Errorf("TruncateANSI should leave short strings unchanged, got %q", got)
	}
}

func TestTruncateANSITinyBudget(t *testing.T) {
	if got := TruncateANSI("418 I'm a teapot", 2); got != "..." {
		t.Errorf("TruncateANSI with tiny budget = %q, want ellipsis", got)
	}
}

func stripTrailingReset(s string) string {
	return strings.TrimSuffix(s, "\x1b[0m")
}
