// Package task defines the task record shared by the store and the TUI.
package task

import (
	"time"
)

// Task represents a single to-do entry.
type Task struct {
	// ID is assigned in memory when the task is created or loaded. It is not
	// written to the task file, which keeps positional records.
	ID          string `json:"-"`
	Description string `json:"task"`
	DueDate     string `json:"due_date"`
	Status      Status `json:"status"`
}

// IsPending returns true if the task is still to do.
func (t *Task) IsPending() bool {
	return t.Status == StatusPending
}

// IsDone returns true if the task has been marked done.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsOverdue returns true if the task is pending and its due date is strictly
// before now. Done tasks and unparsable dates are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}

	due, ok := ParseDueDate(t.DueDate)
	if !ok {
		return false
	}

	return due.Before(now)
}

// Toggle flips the status between pending and done.
func (t *Task) Toggle() {
	t.Status = t.Status.Toggle()
}
