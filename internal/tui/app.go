// Package tui implements the interactive status code viewer as a Bubble
// Tea program. The model owns the filter engine, projection mode, theme
// store, and all transient UI state; everything mutates through the
// single-threaded update loop.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/httpdex/httpdex/internal/config"
	"github.com/httpdex/httpdex/internal/logging"
	"github.com/httpdex/httpdex/internal/theme"
)

// App wraps the Bubble Tea program.
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application.
func New(cfg *config.Config, themes *theme.Store, configDir string, log *logging.Logger) *App {
	return &App{
		model: NewModel(cfg, themes, configDir, log),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit message so the terminal is
	// restored cleanly.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}
