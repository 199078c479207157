package logic

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// startAdd validates the entry and opens the due date prompt.
func (h *Handler) startAdd() tea.Cmd {
	description := strings.TrimSpace(h.Entry.Value())
	if description == "" {
		h.showError(store.ErrEmptyTask)
		return nil
	}

	h.DuePrompt = state.NewDuePrompt(description)
	h.Entry.Blur()
	return textinput.Blink
}

func (h *Handler) submitDueDate() tea.Cmd {
	description := h.DuePrompt.Description
	dueDate := h.DuePrompt.Value()
	h.DuePrompt = nil
	cmd := h.Entry.Focus()

	added, err := h.Store.Add(description, dueDate)
	if err != nil {
		h.handleStoreError(err)
		return cmd
	}

	// Already overdue when added: no reminder for it later.
	if added.IsOverdue(h.Clock()) {
		h.NotifiedTasks[added.ID] = true
	}

	h.Log.Debug("task added", "id", added.ID, "task", added.Description, "due", added.DueDate)
	h.Refresh()
	h.Entry.Reset()
	h.StatusMsg = "Task added"
	return cmd
}

// cancelDueDate closes the prompt. A cancelled prompt counts as an empty date.
func (h *Handler) cancelDueDate() tea.Cmd {
	h.DuePrompt = nil
	h.showError(store.ErrEmptyDueDate)
	return h.Entry.Focus()
}

// removeSelected deletes the selected task. The selection is cleared afterwards.
func (h *Handler) removeSelected() tea.Cmd {
	id := ""
	if h.Selection != nil {
		id = h.Selection.TaskID
	}

	if err := h.Store.Remove(id); err != nil {
		h.handleStoreError(err)
		return nil
	}

	h.Log.Debug("task removed", "id", id)
	h.clearSelection()
	h.Refresh()
	h.StatusMsg = "Task removed"
	return nil
}

// toggleSelected flips the status of the selected task and keeps it selected
// in the list it moved to.
func (h *Handler) toggleSelected() tea.Cmd {
	id := ""
	if h.Selection != nil {
		id = h.Selection.TaskID
	}

	toggled, err := h.Store.Toggle(id)
	if err != nil {
		h.handleStoreError(err)
		return nil
	}

	h.Log.Debug("task toggled", "id", toggled.ID, "status", toggled.Status.String())

	dest := components.ViewOf(toggled.Status)
	h.clearSelection()
	h.Refresh()
	h.List(dest).SelectTask(toggled.ID)
	cmd := h.setFocus(state.FocusFor(dest))

	if toggled.IsDone() {
		h.StatusMsg = "Marked as done"
	} else {
		h.StatusMsg = "Marked as to do"
	}
	return cmd
}

// copySelected copies the selected task to the system clipboard.
func (h *Handler) copySelected() tea.Cmd {
	if h.Selection == nil {
		h.showError(store.ErrNoSelection)
		return nil
	}

	t, ok := h.Store.Get(h.Selection.TaskID)
	if !ok {
		h.showError(store.ErrNoSelection)
		return nil
	}

	content := fmt.Sprintf("%s (%s)", t.Description, t.DueDate)
	return func() tea.Msg {
		if err := writeClipboard(content); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: "Copied to clipboard"}
	}
}

// handleStoreError shows validation errors as notices. Anything else is a
// failed write and ends the program.
func (h *Handler) handleStoreError(err error) {
	if store.IsValidation(err) {
		h.showError(err)
		return
	}
	h.fail(err)
}

func (h *Handler) showError(err error) {
	h.Notice = NoticeFor(err)
}

// fail records a fatal error and shows it; dismissing the notice quits.
func (h *Handler) fail(err error) {
	h.Log.Error("fatal error", "err", err)
	h.Err = err
	h.Notice = &state.Notice{
		Title:   "File Error",
		Message: err.Error(),
		Fatal:   true,
	}
}

// WarnCorruptFile shows the startup warning for a task file that was reset.
func (h *Handler) WarnCorruptFile(err error) {
	var cerr *store.CorruptFileError
	name := filepath.Base(h.Store.Path())
	if errors.As(err, &cerr) {
		name = filepath.Base(cerr.Path)
	}

	h.Log.Warn("task file reset", "path", h.Store.Path(), "err", err)
	h.Notice = &state.Notice{
		Title:   "File Error",
		Message: fmt.Sprintf("Invalid format in %s. Resetting tasks.", name),
	}
}

// NoticeFor maps a validation error to the notice shown to the user.
func NoticeFor(err error) *state.Notice {
	switch {
	case errors.Is(err, store.ErrEmptyTask):
		return &state.Notice{Title: "Input Error", Message: "Task cannot be empty!"}
	case errors.Is(err, store.ErrEmptyDueDate):
		return &state.Notice{Title: "Input Error", Message: "Due date cannot be empty!"}
	case errors.Is(err, store.ErrInvalidDueDate):
		return &state.Notice{Title: "Input Error", Message: "Invalid date format! Use YYYY-MM-DD."}
	case errors.Is(err, store.ErrNoSelection), errors.Is(err, store.ErrTaskNotFound):
		return &state.Notice{Title: "Selection Error", Message: "No task selected!"}
	default:
		return &state.Notice{Title: "Error", Message: err.Error()}
	}
}
