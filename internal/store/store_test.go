package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/todo-tui/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, err)
	return s
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoadMissingFileCreatesEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.JSONEq(t, `[]`, readFile(t, path))
}

func TestLoadCorruptFileResets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `[{"task": "Buy milk",`},
		{"object instead of array", `{"task": "Buy milk", "due_date": "2099-01-01"}`},
		{"missing due date", `[{"task": "Buy milk"}]`},
		{"wrong field type", `[{"task": 42, "due_date": "2099-01-01"}]`},
		{"status not a string", `[{"task": "a", "due_date": "2099-01-01", "status": true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			s, err := Load(path)
			require.NotNil(t, s)
			require.Error(t, err)
			assert.True(t, IsCorrupt(err))

			var cerr *CorruptFileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, path, cerr.Path)

			assert.Equal(t, 0, s.Len())
			assert.JSONEq(t, `[]`, readFile(t, path))
		})
	}
}

func TestLoadReadErrorIsFatal(t *testing.T) {
	// A directory where the file should be cannot be read as a file.
	path := t.TempDir()

	s, err := Load(path)
	assert.Nil(t, s)
	require.Error(t, err)
	assert.False(t, IsCorrupt(err))
}

func TestLoadAssignsStableIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[
  {"task": "Buy milk", "due_date": "2099-01-01"},
  {"task": "Pay rent", "due_date": "2000-01-01", "status": "DONE"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := Load(path)
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.NotEmpty(t, tasks[0].ID)
	assert.NotEmpty(t, tasks[1].ID)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
	assert.Equal(t, task.StatusPending, tasks[0].Status)
	assert.Equal(t, task.StatusDone, tasks[1].Status)
}

func TestAddValid(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Add("  Buy milk  ", "2099-01-01")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "Buy milk", got.Description)
	assert.Equal(t, "2099-01-01", got.DueDate)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.NotEmpty(t, got.ID)

	assert.JSONEq(t, `[{"task":"Buy milk","due_date":"2099-01-01","status":"TO DO"}]`, readFile(t, s.Path()))
}

func TestAddInvalid(t *testing.T) {
	tests := []struct {
		name        string
		description string
		dueDate     string
		wantErr     error
	}{
		{"empty description", "", "2099-01-01", ErrEmptyTask},
		{"blank description", "   ", "2099-01-01", ErrEmptyTask},
		{"empty description wins over empty date", "", "", ErrEmptyTask},
		{"empty date", "Buy milk", "", ErrEmptyDueDate},
		{"impossible date", "Buy milk", "2024-13-40", ErrInvalidDueDate},
		{"not a date", "Buy milk", "not-a-date", ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.Add("Existing", "2099-01-01")
			require.NoError(t, err)

			_, err = s.Add(tt.description, tt.dueDate)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("Buy milk", "2099-01-01")
	require.NoError(t, err)
	rent, err := s.Add("Pay rent", "2000-01-01")
	require.NoError(t, err)
	_, err = s.Add("Call mum", "2030-05-05")
	require.NoError(t, err)
	_, err = s.Toggle(rent.ID)
	require.NoError(t, err)

	reloaded, err := Load(s.Path())
	require.NoError(t, err)

	want := s.Tasks()
	got := reloaded.Tasks()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].DueDate, got[i].DueDate)
		assert.Equal(t, want[i].Status, got[i].Status)
	}
}

func TestToggleTwiceRestoresStatus(t *testing.T) {
	s := newTestStore(t)
	added, err := s.Add("Pay rent", "2000-01-01")
	require.NoError(t, err)

	done, err := s.Toggle(added.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, done.Status)
	assert.Len(t, s.Done(), 1)
	assert.Empty(t, s.Pending())

	back, err := s.Toggle(added.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, back.Status)
	assert.Len(t, s.Pending(), 1)
	assert.Empty(t, s.Done())
}

func TestToggleMissingSelection(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Toggle("")
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = s.Toggle("does-not-exist")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Add("A", "2099-01-01")
	require.NoError(t, err)
	b, err := s.Add("B", "2099-01-02")
	require.NoError(t, err)
	c, err := s.Add("C", "2099-01-03")
	require.NoError(t, err)

	require.NoError(t, s.Remove(b.ID))

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)

	// IDs survive the shift in positions.
	got, ok := s.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, "C", got.Description)
}

func TestRemoveOnlyTaskThenNoSelection(t *testing.T) {
	s := newTestStore(t)
	only, err := s.Add("Buy milk", "2099-01-01")
	require.NoError(t, err)

	require.NoError(t, s.Remove(only.ID))
	assert.Equal(t, 0, s.Len())
	assert.JSONEq(t, `[]`, readFile(t, s.Path()))

	assert.ErrorIs(t, s.Remove(""), ErrNoSelection)
	assert.ErrorIs(t, s.Remove(only.ID), ErrTaskNotFound)
}

func TestTasksReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Add("Buy milk", "2099-01-01")
	require.NoError(t, err)

	tasks := s.Tasks()
	tasks[0].Description = "changed"

	assert.Equal(t, "Buy milk", s.Tasks()[0].Description)
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(filepath.Join(dir, "tasks.json"))
	require.NoError(t, err)

	// Replace the file with a directory so the next write fails.
	require.NoError(t, os.Remove(s.Path()))
	require.NoError(t, os.Mkdir(s.Path(), 0700))

	_, err = s.Add("Buy milk", "2099-01-01")
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Equal(t, 1, s.Len())
}
