package store

import (
	"errors"
	"fmt"
)

// Validation errors returned by store operations. None of them mutate the list.
var (
	ErrEmptyTask      = errors.New("task cannot be empty")
	ErrEmptyDueDate   = errors.New("due date cannot be empty")
	ErrInvalidDueDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNoSelection    = errors.New("no task selected")
	ErrTaskNotFound   = errors.New("task not found")
)

// IsValidation returns true if err is one of the user input errors above.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTask) ||
		errors.Is(err, ErrEmptyDueDate) ||
		errors.Is(err, ErrInvalidDueDate) ||
		errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrTaskNotFound)
}

// CorruptFileError is returned by Load when the task file could not be
// decoded and was reset to an empty list.
type CorruptFileError struct {
	Path string
	Err  error
}

func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("invalid format in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode or schema error.
func (e *CorruptFileError) Unwrap() error {
	return e.Err
}
