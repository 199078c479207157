// Package logic implements the update side of the TUI: key handling and the
// commands that mutate the task store.
package logic

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// chromeHeight is the number of screen lines used around the two lists.
const chromeHeight = 14

type statusMsg struct{ msg string }

// Handler processes messages against the shared state.
type Handler struct {
	*state.State
}

// NewHandler creates a Handler for s.
func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

// Init renders the lists and starts the reminder tick.
func (h *Handler) Init() tea.Cmd {
	h.Refresh()
	return tea.Batch(
		textinput.Blink,
		checkDueCmd(),
		h.startupReminder(),
	)
}

// Update handles a single message.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.handleWindowSizeMsg(msg)
		return nil

	case checkDueMsg:
		return h.handleCheckDue(time.Time(msg))

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil
	}

	// Forward non-key messages (like blink) to the active input
	if h.DuePrompt != nil {
		return h.DuePrompt.Update(msg)
	}
	if h.Focus == state.FocusEntry {
		var cmd tea.Cmd
		h.Entry, cmd = h.Entry.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height
	h.Help.Width = msg.Width

	rows := msg.Height - chromeHeight
	if rows > h.Config.UI.ListHeight {
		rows = h.Config.UI.ListHeight
	}
	if rows < 1 {
		rows = 1
	}
	h.PendingList.SetSize(msg.Width, rows)
	h.DoneList.SetSize(msg.Width, rows)
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// A notice blocks everything else until dismissed
	if h.Notice != nil {
		return h.dismissNotice()
	}

	if h.ShowHelp {
		if key.Matches(msg, h.Keymap.Help, h.Keymap.Back, h.Keymap.Quit) {
			h.ShowHelp = false
		}
		return nil
	}

	if h.DuePrompt != nil {
		return h.handleDuePromptKey(msg)
	}

	if h.Focus == state.FocusEntry {
		return h.handleEntryKey(msg)
	}

	return h.handleListKey(msg)
}

func (h *Handler) handleEntryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.Keymap.Submit):
		return h.startAdd()
	case key.Matches(msg, h.Keymap.Back), key.Matches(msg, h.Keymap.NextFocus):
		return h.setFocus(state.FocusPending)
	case key.Matches(msg, h.Keymap.PrevFocus):
		return h.setFocus(state.FocusDone)
	}

	var cmd tea.Cmd
	h.Entry, cmd = h.Entry.Update(msg)
	return cmd
}

func (h *Handler) handleDuePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, h.Keymap.Submit):
		return h.submitDueDate()
	case key.Matches(msg, h.Keymap.Back):
		return h.cancelDueDate()
	}
	return h.DuePrompt.Update(msg)
}

func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	km := h.Keymap
	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case key.Matches(msg, km.Help):
		h.ShowHelp = true
		return nil
	case key.Matches(msg, km.NextFocus):
		return h.setFocus(nextFocus(h.Focus, 1))
	case key.Matches(msg, km.PrevFocus):
		return h.setFocus(nextFocus(h.Focus, -1))
	case key.Matches(msg, km.Left):
		return h.setFocus(state.FocusPending)
	case key.Matches(msg, km.Right):
		return h.setFocus(state.FocusDone)
	case key.Matches(msg, km.FocusEntry), key.Matches(msg, km.Back):
		return h.setFocus(state.FocusEntry)
	case key.Matches(msg, km.Toggle):
		return h.toggleSelected()
	case key.Matches(msg, km.Remove):
		return h.removeSelected()
	case key.Matches(msg, km.Copy):
		return h.copySelected()
	case key.Matches(msg, km.Submit):
		h.selectCursor(h.FocusedList())
		return nil
	}

	// Moving the cursor selects its row
	list := h.FocusedList()
	if list != nil && (key.Matches(msg, km.Up, km.Down, km.Top, km.Bottom) || isPageKey(msg)) {
		list.Update(msg)
		h.selectCursor(list)
	}
	return nil
}

func isPageKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+d", "ctrl+u", "pgdown", "pgup":
		return true
	}
	return false
}

// nextFocus cycles entry -> to do -> done.
func nextFocus(f state.Focus, delta int) state.Focus {
	n := (int(f) + delta) % 3
	if n < 0 {
		n += 3
	}
	return state.Focus(n)
}

// setFocus moves key input to f. Focusing a list selects its cursor row.
func (h *Handler) setFocus(f state.Focus) tea.Cmd {
	h.Focus = f
	h.PendingList.Blur()
	h.DoneList.Blur()

	if f == state.FocusEntry {
		return h.Entry.Focus()
	}

	h.Entry.Blur()
	list := h.FocusedList()
	list.Focus()
	if list.Len() > 0 {
		h.selectCursor(list)
	}
	return nil
}

// selectCursor makes the cursor row of list the single current selection.
func (h *Handler) selectCursor(list *components.TaskListModel) {
	if list == nil {
		return
	}
	id := list.CursorTaskID()
	if id == "" {
		h.clearSelection()
		return
	}
	h.setSelection(list.Kind(), id)
}

func (h *Handler) setSelection(v components.View, taskID string) {
	h.Selection = &state.Selection{View: v, TaskID: taskID}
	h.PendingList.SetSelected(v == components.ViewPending)
	h.DoneList.SetSelected(v == components.ViewDone)
}

func (h *Handler) clearSelection() {
	h.Selection = nil
	h.PendingList.SetSelected(false)
	h.DoneList.SetSelected(false)
}

// Refresh rebuilds both lists from the store. A selection whose task is no
// longer in the selected list is dropped.
func (h *Handler) Refresh() {
	tasks := h.Store.Tasks()
	now := h.Clock()

	h.PendingList.SetRows(components.BuildRows(tasks, components.ViewPending, now))
	h.DoneList.SetRows(components.BuildRows(tasks, components.ViewDone, now))

	if h.Selection == nil {
		return
	}
	if !h.List(h.Selection.View).SelectTask(h.Selection.TaskID) {
		h.clearSelection()
	}
}

func (h *Handler) dismissNotice() tea.Cmd {
	fatal := h.Notice.Fatal
	h.Notice = nil
	if fatal {
		return tea.Quit
	}
	return nil
}
