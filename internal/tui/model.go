package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/httpdex/httpdex/internal/config"
	"github.com/httpdex/httpdex/internal/engine"
	"github.com/httpdex/httpdex/internal/logging"
	"github.com/httpdex/httpdex/internal/source"
	"github.com/httpdex/httpdex/internal/status"
	"github.com/httpdex/httpdex/internal/theme"
	"github.com/httpdex/httpdex/internal/tui/keymap"
	"github.com/httpdex/httpdex/internal/tui/styles"
	"github.com/httpdex/httpdex/internal/view"
)

// Model is the Bubble Tea model for the status code viewer. All state
// transitions run as discrete, non-overlapping message reactions, so the
// filter state never races between a toggle and a search update.
type Model struct {
	cfg       *config.Config
	log       *logging.Logger
	keymap    *keymap.Keymap
	themes    *theme.Store
	configDir string
	styles    styles.Styles

	eng      *engine.Engine
	viewMode view.Mode
	summary  engine.Summary

	mode   keymap.Mode
	search textinput.Model
	// searchGeneration identifies the newest pending debounce; ticks
	// carrying an older generation are superseded keystrokes and are
	// dropped without touching the engine.
	searchGeneration int

	loading     bool
	loadErr     error
	spinner     spinner.Model
	generatedAt string

	cursor int

	copiedSymbol   string
	copyGeneration int

	width  int
	height int
}

// NewModel creates the initial model. The dataset is not loaded yet; Init
// kicks off the load and the view shows a spinner until it resolves.
func NewModel(cfg *config.Config, themes *theme.Store, configDir string, log *logging.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "code, message, or symbol"
	ti.Prompt = "/"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	eng := engine.New(nil)

	m := Model{
		cfg:       cfg,
		log:       log,
		keymap:    keymap.Default(),
		themes:    themes,
		configDir: configDir,
		eng:       eng,
		viewMode:  view.ModeFlat,
		summary:   eng.SelectionSummary(),
		mode:      keymap.ModeNormal,
		search:    ti,
		loading:   true,
		spinner:   sp,
	}
	m.applyPalette()
	return m
}

// applyPalette rebuilds the styles for the active theme variant, including
// any custom palette file under the config directory.
func (m *Model) applyPalette() {
	palette, err := styles.Resolve(m.configDir, m.themes.Current())
	if err != nil {
		m.log.Warn("custom palette rejected", "error", err)
	}
	m.styles = styles.New(palette)
}

// Init starts the one-time dataset load and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadDatasetCmd(m.cfg.Data.Source),
		m.spinner.Tick,
	)
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetLoadedMsg:
		m.loading = false
		m.generatedAt = source.FormatGeneratedAt(msg.dataset.GeneratedAt)
		m.eng.SetCatalog(msg.dataset.Catalog)
		m.clampCursor()
		m.log.Info("dataset loaded", "codes", len(msg.dataset.Catalog))
		return m, nil

	case datasetErrMsg:
		m.loading = false
		m.loadErr = msg.err
		m.log.Error("dataset load failed", "error", msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDebounceMsg:
		// Only the tick scheduled by the latest keystroke applies.
		if msg.generation != m.searchGeneration {
			return m, nil
		}
		m.eng.SetSearchTerm(m.search.Value())
		m.clampCursor()
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			// Silent recovery: the missing flash is the only signal.
			m.log.Warn("clipboard copy failed", "symbol", msg.symbol, "error", msg.err)
			return m, nil
		}
		m.copiedSymbol = msg.symbol
		m.copyGeneration++
		return m, copyFlashCmd(m.cfg.TUI.CopyFlash(), m.copyGeneration)

	case copyFlashClearMsg:
		if msg.generation == m.copyGeneration {
			m.copiedSymbol = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press according to the active input mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, bound := m.keymap.GetBinding(msg, m.mode)

	switch m.mode {
	case keymap.ModeSearch:
		if bound {
			switch cmd {
			case keymap.CmdAcceptSearch:
				m.mode = keymap.ModeNormal
				m.search.Blur()
				return m, nil
			case keymap.CmdCancelSearch:
				m.mode = keymap.ModeNormal
				m.search.Blur()
				m.search.SetValue("")
				m.searchGeneration++
				m.eng.SetSearchTerm("")
				m.clampCursor()
				return m, nil
			}
		}
		// Everything else edits the input; each edit supersedes any
		// pending debounce by bumping the generation.
		before := m.search.Value()
		var tiCmd tea.Cmd
		m.search, tiCmd = m.search.Update(msg)
		if m.search.Value() == before {
			return m, tiCmd
		}
		m.searchGeneration++
		return m, tea.Batch(tiCmd, debounceCmd(m.cfg.TUI.SearchDebounce(), m.searchGeneration))

	case keymap.ModeFilter:
		if !bound {
			return m, nil
		}
		switch cmd {
		case keymap.CmdToggleInformational:
			m.toggleCategory(status.CategoryInformational)
		case keymap.CmdToggleSuccess:
			m.toggleCategory(status.CategorySuccess)
		case keymap.CmdToggleRedirection:
			m.toggleCategory(status.CategoryRedirection)
		case keymap.CmdToggleClientError:
			m.toggleCategory(status.CategoryClientError)
		case keymap.CmdToggleServerError:
			m.toggleCategory(status.CategoryServerError)
		case keymap.CmdExitFilter:
			m.mode = keymap.ModeNormal
		}
		return m, nil

	default:
		if !bound {
			return m, nil
		}
		return m.handleNormalCommand(cmd)
	}
}

func (m Model) handleNormalCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdEnterSearch:
		m.mode = keymap.ModeSearch
		m.search.Focus()
		return m, textinput.Blink

	case keymap.CmdEnterFilter:
		m.mode = keymap.ModeFilter
		return m, nil

	case keymap.CmdCycleViewMode:
		m.viewMode = m.viewMode.Next()
		m.clampCursor()
		return m, nil

	case keymap.CmdToggleTheme:
		variant, err := m.themes.Toggle()
		if err != nil {
			m.log.Warn("theme preference not persisted", "error", err)
		}
		m.log.Debug("theme toggled", "variant", string(variant))
		m.applyPalette()
		return m, nil

	case keymap.CmdCursorDown:
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil

	case keymap.CmdCursorUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case keymap.CmdCursorTop:
		m.cursor = 0
		return m, nil

	case keymap.CmdCursorEnd:
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case keymap.CmdCopySymbol:
		rows := m.visible()
		if m.cursor >= len(rows) {
			return m, nil
		}
		return m, copySymbolCmd(rows[m.cursor].Symbol)

	case keymap.CmdClearSearch:
		m.search.SetValue("")
		m.searchGeneration++
		m.eng.SetSearchTerm("")
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

func (m *Model) toggleCategory(cat status.Category) {
	m.eng.ToggleCategory(cat)
	m.summary = m.eng.SelectionSummary()
	m.clampCursor()
}

// visible returns the selectable rows in on-screen order: the filtered
// catalog for flat layouts, or the grouped concatenation for the grouped
// layout. Projection never changes membership, only arrangement.
func (m Model) visible() status.Catalog {
	p := view.Project(m.eng.Filtered(), m.viewMode)
	if p.Empty {
		return nil
	}
	if m.viewMode != view.ModeGrouped {
		return p.Flat
	}
	var rows status.Catalog
	for _, g := range p.Groups {
		rows = append(rows, g.Codes...)
	}
	return rows
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}
