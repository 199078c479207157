// Package ui renders the application state.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// WindowTitle is shown at the top of the screen.
const WindowTitle = "To-Do Task Manager"

// Renderer renders the state to a string.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	// Dialogs replace the main layout until closed
	switch {
	case r.Notice != nil:
		return r.place(r.renderNotice())
	case r.DuePrompt != nil:
		return r.place(r.renderDuePrompt())
	case r.ShowHelp:
		return r.place(r.renderHelp())
	}

	return styles.App.Render(r.renderMainView())
}

// renderMainView renders the title, both lists, the entry and the action bar.
func (r *Renderer) renderMainView() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(WindowTitle))
	b.WriteString("\n\n")

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		r.PendingList.View(),
		" ",
		r.DoneList.View(),
	)
	b.WriteString(lists)
	b.WriteString("\n")

	b.WriteString(r.renderEntry())
	b.WriteString("\n")
	b.WriteString(r.renderActions())
	b.WriteString("\n")
	b.WriteString(r.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(r.Help.View(r.Keymap))

	return b.String()
}

func (r *Renderer) renderEntry() string {
	style := styles.Input
	if r.Focus == state.FocusEntry {
		style = styles.InputFocused
	}
	entry := style.Render(r.Entry.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, entry, " ", renderButton("enter", "Add Task"))
}

// renderActions renders the buttons acting on the selection. The toggle
// button is only shown while a task is selected.
func (r *Renderer) renderActions() string {
	buttons := []string{renderButton("d", "Remove Task")}
	if label := r.ToggleLabel(); label != "" {
		buttons = append(buttons, " ", renderButton("x", label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func renderButton(key, label string) string {
	return styles.Button.Render(styles.ButtonKey.Render("["+key+"]") + " " + label)
}

func (r *Renderer) renderStatusBar() string {
	if r.StatusMsg != "" {
		return styles.StatusBarSuccess.Render(r.StatusMsg)
	}

	summary := fmt.Sprintf("%d to do · %d done", r.PendingList.Len(), r.DoneList.Len())
	if overdue := r.overdueCount(); overdue > 0 {
		return styles.StatusBar.Render(summary) + styles.StatusBarError.Render(fmt.Sprintf("%d overdue", overdue))
	}
	return styles.StatusBar.Render(summary)
}

func (r *Renderer) overdueCount() int {
	now := r.Clock()
	n := 0
	for _, t := range r.Store.Pending() {
		if t.IsOverdue(now) {
			n++
		}
	}
	return n
}

// place centers a dialog on the screen once its size is known.
func (r *Renderer) place(dialog string) string {
	if r.Width == 0 || r.Height == 0 {
		return dialog
	}
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
