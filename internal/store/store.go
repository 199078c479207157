// Package store keeps the ordered task list in memory and persists it as a
// single JSON file that is rewritten on every change.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hy4ri/todo-tui/internal/task"
)

// Store is the in-memory task list bound to a file on disk.
type Store struct {
	path  string
	tasks []task.Task
}

// Load reads the task file at path.
//
// A missing file is created holding an empty list. A file that is not a valid
// task list is overwritten with an empty list; in that case the empty store is
// returned together with a *CorruptFileError so the caller can warn the user.
// Any other error is fatal and the returned store is nil.
func Load(path string) (*Store, error) {
	s := &Store{path: path, tasks: []task.Task{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read task file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create task directory: %w", err)
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	tasks, decodeErr := decode(data)
	if decodeErr != nil {
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, &CorruptFileError{Path: path, Err: decodeErr}
	}

	for i := range tasks {
		tasks[i].ID = uuid.NewString()
	}
	s.tasks = tasks

	return s, nil
}

func decode(data []byte) ([]task.Task, error) {
	if err := validateTaskFile(data); err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task file: %w", err)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	return tasks, nil
}

// Save overwrites the task file with the full current list.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}

	return nil
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of all tasks in list order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Pending returns the pending tasks in list order.
func (s *Store) Pending() []task.Task {
	return s.filter(task.StatusPending)
}

// Done returns the done tasks in list order.
func (s *Store) Done() []task.Task {
	return s.filter(task.StatusDone)
}

func (s *Store) filter(status task.Status) []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task with the given ID.
func (s *Store) Get(id string) (task.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a pending task and persists the list.
// The description is trimmed; the due date must be a valid YYYY-MM-DD date.
func (s *Store) Add(description, dueDate string) (task.Task, error) {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return task.Task{}, ErrEmptyTask
	case dueDate == "":
		return task.Task{}, ErrEmptyDueDate
	case !task.ValidDueDate(dueDate):
		return task.Task{}, ErrInvalidDueDate
	}

	t := task.Task{
		ID:          uuid.NewString(),
		Description: description,
		DueDate:     dueDate,
		Status:      task.StatusPending,
	}
	s.tasks = append(s.tasks, t)

	return t, s.Save()
}

// Remove deletes the task with the given ID and persists the list.
func (s *Store) Remove(id string) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	return s.Save()
}

// Toggle flips the stored status of the task with the given ID and persists
// the list. It returns the updated task.
func (s *Store) Toggle(id string) (task.Task, error) {
	i, err := s.lookup(id)
	if err != nil {
		return task.Task{}, err
	}

	s.tasks[i].Toggle()

	return s.tasks[i], s.Save()
}

func (s *Store) lookup(id string) (int, error) {
	if id == "" {
		return -1, ErrNoSelection
	}
	i := s.index(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return i, nil
}

// IsCorrupt reports whether err came from a reset of an unreadable task file.
func IsCorrupt(err error) bool {
	var cerr *CorruptFileError
	return errors.As(err, &cerr)
}
