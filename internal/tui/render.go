package tui

import (
	"fmt"
	"strings"

	"github.com/httpdex/httpdex/internal/errors"
	"github.com/httpdex/httpdex/internal/status"
	"github.com/httpdex/httpdex/internal/tui/keymap"
	"github.com/httpdex/httpdex/internal/util"
	"github.com/httpdex/httpdex/internal/view"
)

// Layout constants
const (
	// headerHeight covers the title line, search line, and separator.
	headerHeight = 3
	// footerHeight covers the status line and help bar.
	footerHeight = 2
)

// loadFailureMessage phrases a dataset load failure for the banner.
// DataLoadError already names the source, so it is shown as-is.
func loadFailureMessage(err error) string {
	var loadErr *errors.DataLoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	return "Failed to load status codes: " + err.Error()
}

// View renders the full screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" Loading status codes..."))
	case m.loadErr != nil:
		b.WriteString(m.styles.ErrorBanner.Render(loadFailureMessage(m.loadErr)))
	case m.mode == keymap.ModeFilter:
		b.WriteString(m.renderFilterPanel())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("httpdex")
	parts := []string{title}

	if m.generatedAt != "" {
		parts = append(parts, m.styles.Muted.Render("dataset "+m.generatedAt))
	}
	parts = append(parts,
		m.styles.Muted.Render(m.viewMode.String()+" view"),
		m.styles.Muted.Render(m.summary.Label),
	)

	return strings.Join(parts, m.styles.Muted.Render("  ·  "))
}

func (m Model) renderSearchLine() string {
	if m.mode == keymap.ModeSearch {
		return m.search.View()
	}
	if term := m.eng.SearchTerm(); term != "" {
		return m.styles.SearchPrompt.Render("/") + m.styles.SearchInput.Render(term)
	}
	return m.styles.Muted.Render("press / to search")
}

// line is one rendered row of the list area. Selectable lines correspond
// to an index in Model.visible; section headers and blanks do not.
type line struct {
	text       string
	selectable bool
}

func (m Model) renderList() string {
	projection := view.Project(m.eng.Filtered(), m.viewMode)
	if projection.Empty {
		return m.styles.Muted.Render("No matching status codes")
	}

	var lines []line
	switch m.viewMode {
	case view.ModeGrouped:
		for gi, g := range projection.Groups {
			if gi > 0 {
				lines = append(lines, line{})
			}
			header := fmt.Sprintf("%s (%d)", g.Category.String(), len(g.Codes))
			lines = append(lines, line{text: m.styles.SectionHeader.Render(header)})
			for _, c := range g.Codes {
				lines = append(lines, line{text: m.renderRow(c, false), selectable: true})
			}
		}
	default:
		for _, c := range projection.Flat {
			lines = append(lines, line{text: m.renderRow(c, m.viewMode == view.ModeCompactFlat), selectable: true})
		}
	}

	return m.window(lines)
}

// renderRow renders a single status code line. Compact rows drop the
// symbol, category, and reference link.
func (m Model) renderRow(c status.Code, compact bool) string {
	code := m.styles.CategoryBadge(c.Category).Render(c.CodeText())

	if compact {
		return fmt.Sprintf("%s %s", code, m.styles.Text.Render(c.Message))
	}

	parts := []string{
		code,
		m.styles.Text.Render(fmt.Sprintf("%-35s", util.TruncateString(c.Message, 35))),
		m.styles.Symbol.Render(":" + c.Symbol),
	}
	if m.viewMode == view.ModeFlat {
		parts = append(parts, m.styles.Muted.Render(c.Category.String()))
		if m.cfg.TUI.ShowReferenceURLs && c.ReferenceURL != "" {
			parts = append(parts, m.styles.Reference.Render(c.ReferenceURL))
		}
	}
	return strings.Join(parts, "  ")
}

// window applies cursor highlighting and scrolls the line list so the
// cursor stays visible within the content area.
func (m Model) window(lines []line) string {
	// Attach the cursor to the nth selectable line.
	selectable := 0
	cursorLine := 0
	for i := range lines {
		if !lines[i].selectable {
			continue
		}
		if selectable == m.cursor {
			lines[i].text = m.styles.SelectedRow.Render("> ") + lines[i].text
			cursorLine = i
		} else {
			lines[i].text = "  " + lines[i].text
		}
		selectable++
	}

	if m.width > 0 {
		for i := range lines {
			lines[i].text = util.TruncateANSI(lines[i].text, m.width)
		}
	}

	visible := m.contentHeight()
	if visible <= 0 || len(lines) <= visible {
		return joinLines(lines)
	}

	start := cursorLine - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(lines) {
		start = len(lines) - visible
	}
	return joinLines(lines[start : start+visible])
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 0 // no size yet, render everything
	}
	return m.height - headerHeight - footerHeight - 2
}

func joinLines(lines []line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return strings.Join(texts, "\n")
}

func (m Model) renderFilterPanel() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Category Filters"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Toggle categories; none selected shows everything:"))
	b.WriteString("\n\n")

	shortcuts := map[status.Category]string{
		status.CategoryInformational: "i/1",
		status.CategorySuccess:       "s/2",
		status.CategoryRedirection:   "r/3",
		status.CategoryClientError:   "c/4",
		status.CategoryServerError:   "e/5",
	}

	for _, cat := range status.Categories() {
		var checkbox string
		if m.eng.IsSelected(cat) {
			checkbox = m.styles.Checkbox.Render("[x]")
		} else {
			checkbox = m.styles.CheckboxEmpty.Render("[ ]")
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			checkbox,
			m.styles.CategoryBadge(cat).Render(fmt.Sprintf("%-13s", cat.String())),
			m.styles.Muted.Render("("+shortcuts[cat]+")"))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.summary.Label))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Press esc or f to close"))

	width := m.width
	if width == 0 {
		width = 60
	}
	return m.styles.PanelBox.Width(min(width-4, 56)).Render(b.String())
}

func (m Model) renderStatusLine() string {
	if m.copiedSymbol != "" {
		return m.styles.CopiedFlash.Render(fmt.Sprintf("Copied :%s", m.copiedSymbol))
	}
	if m.loading || m.loadErr != nil {
		return ""
	}
	return m.styles.Muted.Render(fmt.Sprintf("%d codes", len(m.eng.Filtered())))
}

func (m Model) renderHelpBar() string {
	var bindings []keymap.KeyBinding
	switch m.mode {
	case keymap.ModeSearch:
		bindings = m.keymap.GetModeBindings(keymap.ModeSearch)
	case keymap.ModeFilter:
		bindings = m.keymap.GetModeBindings(keymap.ModeFilter)
	default:
		// The normal-mode bar stays short; navigation keys are obvious.
		for _, b := range m.keymap.GetModeBindings(keymap.ModeNormal) {
			switch b.Command {
			case keymap.CmdEnterSearch, keymap.CmdEnterFilter, keymap.CmdCycleViewMode,
				keymap.CmdToggleTheme, keymap.CmdCopySymbol, keymap.CmdQuit:
				bindings = append(bindings, b)
			}
		}
	}

	seen := make(map[keymap.Command]bool)
	var parts []string
	for _, b := range bindings {
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		parts = append(parts,
			m.styles.HelpKey.Render(b.String())+m.styles.HelpLabel.Render(" "+b.Description))
	}
	return strings.Join(parts, m.styles.HelpLabel.Render("  "))
}
