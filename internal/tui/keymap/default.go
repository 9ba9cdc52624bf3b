package keymap

import tea "github.com/charmbracelet/bubbletea"

// Default returns the default keymap configuration.
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeSearch: defaultSearchBindings(),
			ModeFilter: defaultFilterBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Next code"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Next code"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Previous code"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Previous code"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdCursorTop, Description: "First code"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdCursorEnd, Description: "Last code"},

			// Mode entry
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterSearch, Description: "Search"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdEnterFilter, Description: "Filter categories"},

			// Presentation
			{KeyType: tea.KeyRunes, Rune: 'v', Command: CmdCycleViewMode, Description: "Cycle view mode"},
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdToggleTheme, Description: "Toggle light/dark"},

			// Actions
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCopySymbol, Description: "Copy symbol"},
			{KeyType: tea.KeyEnter, Command: CmdCopySymbol, Description: "Copy symbol"},
			{KeyType: tea.KeyEsc, Command: CmdClearSearch, Description: "Clear search"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdAcceptSearch, Description: "Accept search"},
			{KeyType: tea.KeyEsc, Command: CmdCancelSearch, Description: "Cancel search"},
			{KeyType: tea.KeyCtrlC, Command: CmdCancelSearch, Description: "Cancel search"},
		},
	}
}

func defaultFilterBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFilter,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdToggleInformational, Description: "Toggle Informational"},
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdToggleInformational, Description: "Toggle Informational"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdToggleSuccess, Description: "Toggle Success"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdToggleSuccess, Description: "Toggle Success"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdToggleRedirection, Description: "Toggle Redirection"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdToggleRedirection, Description: "Toggle Redirection"},
			{KeyType: tea.KeyRunes, Rune: '4', Command: CmdToggleClientError, Description: "Toggle Client Error"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdToggleClientError, Description: "Toggle Client Error"},
			{KeyType: tea.KeyRunes, Rune: '5', Command: CmdToggleServerError, Description: "Toggle Server Error"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdToggleServerError, Description: "Toggle Server Error"},
			{KeyType: tea.KeyEsc, Command: CmdExitFilter, Description: "Close filter panel"},
			{KeyType: tea.KeyRunes, Rune: 'f', Command: CmdExitFilter, Description: "Close filter panel"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdExitFilter, Description: "Close filter panel"},
		},
	}
}
