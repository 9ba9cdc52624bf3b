package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/httpdex/httpdex/internal/errors"
	"github.com/httpdex/httpdex/internal/source"
)

// datasetLoadedMsg carries the parsed dataset after the one-time load.
type datasetLoadedMsg struct {
	dataset *source.Dataset
}

// datasetErrMsg signals that the one-time load failed. There is no retry;
// the error banner replaces the content area for the rest of the session.
type datasetErrMsg struct {
	err error
}

// searchDebounceMsg fires when a scheduled debounce window elapses. The
// generation identifies which keystroke scheduled it; stale generations
// are dropped, so only the last keystroke in a burst applies the term.
type searchDebounceMsg struct {
	generation int
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	symbol string
	err    error
}

// copyFlashClearMsg ends the "copied" confirmation window. Generations
// keep a rapid second copy from being cleared by the first copy's timer.
type copyFlashClearMsg struct {
	generation int
}

// loadDatasetCmd performs the single dataset read off the update loop.
func loadDatasetCmd(ref string) tea.Cmd {
	return func() tea.Msg {
		ds, err := source.Load(context.Background(), ref)
		if err != nil {
			return datasetErrMsg{err: err}
		}
		return datasetLoadedMsg{dataset: ds}
	}
}

// copySymbolCmd writes ":<symbol>" to the system clipboard.
func copySymbolCmd(symbol string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(":" + symbol); err != nil {
			return copyResultMsg{symbol: symbol, err: errors.NewClipboardError(symbol, err)}
		}
		return copyResultMsg{symbol: symbol}
	}
}

// debounceCmd schedules a searchDebounceMsg for the given generation.
func debounceCmd(d time.Duration, generation int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{generation: generation}
	})
}

// copyFlashCmd schedules the end of the copy confirmation window.
func copyFlashCmd(d time.Duration, generation int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyFlashClearMsg{generation: generation}
	})
}
