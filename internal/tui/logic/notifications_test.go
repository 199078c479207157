package logic

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureNotifications replaces notify for the duration of the test.
func captureNotifications(t *testing.T) *[]string {
	t.Helper()
	var sent []string
	orig := notify
	notify = func(title, message string) error {
		sent = append(sent, message)
		return nil
	}
	t.Cleanup(func() { notify = orig })
	return &sent
}

// runCmd executes cmd and any commands it batches.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}

func TestDueReminders(t *testing.T) {
	checkTime := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		dueDate    string
		done       bool
		enabled    bool
		wantNotify []string
		wantMarked bool
	}{
		{
			name:       "overdue pending task",
			dueDate:    "2024-06-14",
			enabled:    true,
			wantNotify: []string{"Task overdue: Pay rent"},
			wantMarked: true,
		},
		{
			name:       "due today is overdue after midnight",
			dueDate:    "2024-06-15",
			enabled:    true,
			wantNotify: []string{"Task overdue: Pay rent"},
			wantMarked: true,
		},
		{
			name:    "future task",
			dueDate: "2024-06-16",
			enabled: true,
		},
		{
			name:    "done task",
			dueDate: "2024-06-14",
			done:    true,
			enabled: true,
		},
		{
			name:       "notifications disabled",
			dueDate:    "2024-06-14",
			enabled:    false,
			wantMarked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sent := captureNotifications(t)
			h := newTestHandler(t)
			h.Config.Notifications.Enabled = tt.enabled

			added, err := h.Store.Add("Pay rent", tt.dueDate)
			require.NoError(t, err)
			if tt.done {
				_, err = h.Store.Toggle(added.ID)
				require.NoError(t, err)
			}

			runCmd(h.dueReminders(checkTime))

			assert.Equal(t, tt.wantNotify, *sent)
			assert.Equal(t, tt.wantMarked, h.NotifiedTasks[added.ID])
		})
	}
}

func TestDueRemindersNotifyOnce(t *testing.T) {
	sent := captureNotifications(t)
	h := newTestHandler(t)
	h.Config.Notifications.Enabled = true

	_, err := h.Store.Add("Pay rent", "2024-06-14")
	require.NoError(t, err)

	checkTime := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)
	runCmd(h.dueReminders(checkTime))
	runCmd(h.dueReminders(checkTime.Add(time.Minute)))

	assert.Len(t, *sent, 1)
}

func TestDueRemindersNotifyFailureIsLogged(t *testing.T) {
	orig := notify
	notify = func(title, message string) error {
		return errors.New("no notification daemon")
	}
	defer func() { notify = orig }()

	h := newTestHandler(t)
	h.Config.Notifications.Enabled = true
	_, err := h.Store.Add("Pay rent", "2024-06-14")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		runCmd(h.dueReminders(fixedNow))
	})
}

func TestStartupReminder(t *testing.T) {
	sent := captureNotifications(t)
	h := newTestHandler(t)
	h.Config.Notifications.Enabled = true

	for _, due := range []string{"2000-01-01", "2001-01-01", "2099-01-01"} {
		_, err := h.Store.Add("Task "+due, due)
		require.NoError(t, err)
	}

	runCmd(h.startupReminder())

	assert.Equal(t, []string{"You have 2 overdue tasks"}, *sent)

	// Tasks already reported at startup are not reported again.
	runCmd(h.dueReminders(fixedNow))
	assert.Len(t, *sent, 1)
}

func TestStartupReminderDisabled(t *testing.T) {
	sent := captureNotifications(t)
	h := newTestHandler(t)

	_, err := h.Store.Add("Pay rent", "2000-01-01")
	require.NoError(t, err)

	assert.Nil(t, h.startupReminder())
	assert.Empty(t, *sent)
	assert.Len(t, h.NotifiedTasks, 1)
}
