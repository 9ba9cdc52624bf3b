// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per input mode so the update loop can translate a
// key press into a named command without a wall of switch cases.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal Mode = "normal" // Default browsing mode
	ModeSearch Mode = "search" // Typing into the search input (after /)
	ModeFilter Mode = "filter" // Toggling category filters (after f)
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Navigation
	CmdCursorDown Command = "cursor_down"
	CmdCursorUp   Command = "cursor_up"
	CmdCursorTop  Command = "cursor_top"
	CmdCursorEnd  Command = "cursor_end"

	// Mode entry
	CmdEnterSearch Command = "enter_search"
	CmdEnterFilter Command = "enter_filter"

	// Presentation
	CmdCycleViewMode Command = "cycle_view_mode"
	CmdToggleTheme   Command = "toggle_theme"

	// Actions
	CmdCopySymbol  Command = "copy_symbol"
	CmdClearSearch Command = "clear_search"

	// Exit
	CmdQuit Command = "quit"
)

// Search mode commands. Keys not bound here are forwarded to the text input.
const (
	CmdAcceptSearch Command = "accept_search"
	CmdCancelSearch Command = "cancel_search"
)

// Filter mode commands
const (
	CmdToggleInformational Command = "toggle_informational"
	CmdToggleSuccess       Command = "toggle_success"
	CmdToggleRedirection   Command = "toggle_redirection"
	CmdToggleClientError   Command = "toggle_client_error"
	CmdToggleServerError   Command = "toggle_server_error"
	CmdExitFilter          Command = "exit_filter"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For special keys, use tea.KeyType constants (e.g., tea.KeyEnter).
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for the help bar.
	Description string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	if kb.Rune == ' ' {
		return "space"
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}
