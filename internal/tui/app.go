// Package tui provides the terminal user interface for the task manager.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the application for s. loadErr is the error returned when
// the task file was loaded; a reset corrupt file is reported to the user.
func NewApp(s *store.Store, cfg *config.Config, logger *log.Logger, loadErr error) *App {
	st := state.New(s, cfg, logger)

	app := &App{
		state:    st,
		handler:  logic.NewHandler(st),
		renderer: ui.NewRenderer(st),
	}

	if store.IsCorrupt(loadErr) {
		app.handler.WarnCorruptFile(loadErr)
	}

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// Err returns the error that ended the program, if any.
func (a *App) Err() error {
	return a.state.Err
}
