package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const cursorMarker = "▸ "

// TaskListModel is one of the two scrollable task panels.
type TaskListModel struct {
	view         View
	rows         []Row
	cursor       int
	selected     bool // the cursor row is the application's current selection
	focused      bool
	descWidth    int
	dateWidth    int
	height       int
	viewport     viewport.Model
	emptyMessage string
}

// NewTaskList creates a panel for view showing height rows.
func NewTaskList(view View, descWidth, dateWidth, height int) *TaskListModel {
	t := &TaskListModel{
		view:         view,
		descWidth:    descWidth,
		dateWidth:    dateWidth,
		emptyMessage: "No tasks",
	}
	t.viewport = viewport.New(t.RowWidth()+lipgloss.Width(cursorMarker), height)
	t.height = height
	return t
}

// Init implements Component.
func (t *TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. It only handles cursor movement; the caller
// reads CursorTaskID afterwards to update the selection.
func (t *TaskListModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			t.MoveCursor(1)
		case "k", "up":
			t.MoveCursor(-1)
		case "g", "home":
			t.cursor = 0
		case "G", "end":
			t.moveCursorToEnd()
		case "ctrl+d", "pgdown":
			t.MoveCursor(t.height / 2)
		case "ctrl+u", "pgup":
			t.MoveCursor(-t.height / 2)
		}
	}
	return t, nil
}

// View implements Component.
func (t *TaskListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.PanelTitle.Width(t.viewport.Width).Render(t.view.String()))
	b.WriteString("\n")

	if len(t.rows) == 0 {
		t.viewport.SetContent(styles.EmptyList.Render(t.emptyMessage))
		t.viewport.SetYOffset(0)
	} else {
		lines := make([]string, len(t.rows))
		for i, row := range t.rows {
			lines[i] = t.renderRow(i, row)
		}
		t.viewport.SetContent(strings.Join(lines, "\n"))
		t.scrollToCursor()
	}
	b.WriteString(t.viewport.View())

	panel := styles.Panel
	if t.focused {
		panel = styles.PanelFocused
	}
	return panel.Render(b.String())
}

func (t *TaskListModel) renderRow(i int, row Row) string {
	marker := strings.Repeat(" ", lipgloss.Width(cursorMarker))
	if i == t.cursor && (t.focused || t.selected) {
		marker = styles.RowCursor.Render(cursorMarker)
	}

	style := RowStyle(row.Kind)
	if i == t.cursor && t.selected {
		style = style.Bold(true).Underline(true)
	}

	return marker + style.Render(FormatRow(row.Description, row.DueDate, t.descWidth, t.dateWidth))
}

// scrollToCursor keeps the cursor row inside the viewport.
func (t *TaskListModel) scrollToCursor() {
	if t.cursor < t.viewport.YOffset {
		t.viewport.SetYOffset(t.cursor)
	} else if t.cursor >= t.viewport.YOffset+t.viewport.Height {
		t.viewport.SetYOffset(t.cursor - t.viewport.Height + 1)
	}
}

// SetSize implements Component. Width is fixed by the column widths; only
// the number of visible rows changes.
func (t *TaskListModel) SetSize(_, height int) {
	if height < 1 {
		height = 1
	}
	t.height = height
	t.viewport.Height = height
}

// Focus sets focus on the list.
func (t *TaskListModel) Focus() {
	t.focused = true
}

// Blur removes focus.
func (t *TaskListModel) Blur() {
	t.focused = false
}

// Focused returns focus state.
func (t *TaskListModel) Focused() bool {
	return t.focused
}

// Kind returns which list this panel shows.
func (t *TaskListModel) Kind() View {
	return t.view
}

// SetRows replaces the rows, keeping the cursor in range.
func (t *TaskListModel) SetRows(rows []Row) {
	t.rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// Rows returns the current rows.
func (t *TaskListModel) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *TaskListModel) Len() int {
	return len(t.rows)
}

// Cursor returns the cursor position.
func (t *TaskListModel) Cursor() int {
	return t.cursor
}

// CursorTaskID returns the task under the cursor, or "" for an empty list.
func (t *TaskListModel) CursorTaskID() string {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return ""
	}
	return t.rows[t.cursor].TaskID
}

// SetSelected marks whether the cursor row is the current selection.
func (t *TaskListModel) SetSelected(selected bool) {
	t.selected = selected
}

// Selected reports whether the cursor row is the current selection.
func (t *TaskListModel) Selected() bool {
	return t.selected
}

// SelectTask moves the cursor to the row of taskID. It returns false if the
// task is not in this list.
func (t *TaskListModel) SelectTask(taskID string) bool {
	for i, row := range t.rows {
		if row.TaskID == taskID {
			t.cursor = i
			return true
		}
	}
	return false
}

// MoveCursor moves the cursor by delta.
func (t *TaskListModel) MoveCursor(delta int) {
	t.cursor += delta
	if t.cursor < 0 {
		t.cursor = 0
	}
	if len(t.rows) > 0 && t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if len(t.rows) == 0 {
		t.cursor = 0
	}
}

// moveCursorToEnd moves cursor to the last item.
func (t *TaskListModel) moveCursorToEnd() {
	if len(t.rows) > 0 {
		t.cursor = len(t.rows) - 1
	}
}

// RowWidth returns the display width of a formatted row.
func (t *TaskListModel) RowWidth() int {
	return t.descWidth + 1 + t.dateWidth
}

// RowStyle returns the colors for a row kind.
func RowStyle(kind RowKind) lipgloss.Style {
	switch kind {
	case RowOverdue:
		return styles.RowOverdue
	case RowDone:
		return styles.RowDone
	default:
		return styles.RowPending
	}
}

// FormatRow lays out a task as two fixed-width columns separated by a space.
// Longer values are truncated with an ellipsis.
func FormatRow(description, dueDate string, descWidth, dateWidth int) string {
	return fitColumn(description, descWidth) + " " + fitColumn(dueDate, dateWidth)
}

func fitColumn(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
