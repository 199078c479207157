package components

import (
	"time"

	"github.com/hy4ri/todo-tui/internal/task"
)

// View identifies one of the two task lists.
type View int

const (
	ViewPending View = iota
	ViewDone
)

// String returns the list title.
func (v View) String() string {
	if v == ViewDone {
		return "Done"
	}
	return "To Do"
}

// Status returns the task status shown in the view.
func (v View) Status() task.Status {
	if v == ViewDone {
		return task.StatusDone
	}
	return task.StatusPending
}

// Opposite returns the other view.
func (v View) Opposite() View {
	if v == ViewDone {
		return ViewPending
	}
	return ViewDone
}

// ViewOf returns the view a task with the given status belongs to.
func ViewOf(s task.Status) View {
	if s == task.StatusDone {
		return ViewDone
	}
	return ViewPending
}

// RowKind decides how a row is colored.
type RowKind int

const (
	RowPending RowKind = iota
	RowOverdue
	RowDone
)

// Row is one display line of a task list.
type Row struct {
	TaskID      string
	Description string
	DueDate     string
	Kind        RowKind
}

// BuildRows derives the rows of view from the full task list, in list order.
func BuildRows(tasks []task.Task, view View, now time.Time) []Row {
	status := view.Status()

	var rows []Row
	for i := range tasks {
		t := &tasks[i]
		if t.Status != status {
			continue
		}

		kind := RowPending
		switch {
		case t.IsDone():
			kind = RowDone
		case t.IsOverdue(now):
			kind = RowOverdue
		}

		rows = append(rows, Row{
			TaskID:      t.ID,
			Description: t.Description,
			DueDate:     t.DueDate,
			Kind:        kind,
		})
	}
	return rows
}
