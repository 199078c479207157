package logic

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

const notificationTitle = "To-Do Task Manager"

// notify sends a desktop notification. Replaced in tests.
var notify = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// handleCheckDue re-renders with the current time and schedules the next check.
func (h *Handler) handleCheckDue(t time.Time) tea.Cmd {
	h.Refresh()
	return tea.Batch(checkDueCmd(), h.dueReminders(t))
}

// dueReminders sends one reminder for each pending task that became overdue
// since the last check.
func (h *Handler) dueReminders(t time.Time) tea.Cmd {
	var cmds []tea.Cmd

	for _, task := range h.Store.Pending() {
		if h.NotifiedTasks[task.ID] || !task.IsOverdue(t) {
			continue
		}
		h.NotifiedTasks[task.ID] = true

		if !h.Config.Notifications.Enabled {
			continue
		}

		h.Log.Info("task overdue", "task", task.Description, "due", task.DueDate)
		cmds = append(cmds, h.notifyCmd("Task overdue: "+task.Description))
	}

	return tea.Batch(cmds...)
}

// startupReminder marks tasks that are already overdue and, when reminders are
// enabled, summarises them in a single notification.
func (h *Handler) startupReminder() tea.Cmd {
	now := h.Clock()

	overdue := 0
	for _, task := range h.Store.Pending() {
		if task.IsOverdue(now) {
			h.NotifiedTasks[task.ID] = true
			overdue++
		}
	}

	if overdue == 0 || !h.Config.Notifications.Enabled {
		return nil
	}

	msg := "You have 1 overdue task"
	if overdue > 1 {
		msg = fmt.Sprintf("You have %d overdue tasks", overdue)
	}
	return h.notifyCmd(msg)
}

func (h *Handler) notifyCmd(message string) tea.Cmd {
	logger := h.Log
	return func() tea.Msg {
		if err := notify(notificationTitle, message); err != nil {
			logger.Warn("failed to send notification", "err", err)
		}
		return nil
	}
}
