// Package components provides the task list panels and their row model.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model owning one region of the screen.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Panel is a focusable list that can hold the application's single selection.
// Selection state lives with the caller; the panel only marks its cursor row.
type Panel interface {
	Component

	Focus()
	Blur()
	Focused() bool

	// Kind reports which list the panel shows.
	Kind() View
	CursorTaskID() string
	SelectTask(taskID string) bool
	SetSelected(selected bool)
}

var _ Panel = (*TaskListModel)(nil)
