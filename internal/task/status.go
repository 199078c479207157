package task

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state of a task.
type Status int

const (
	StatusPending Status = iota
	StatusDone
)

// Stored values for Status in the task file.
const (
	storedPending = "TO DO"
	storedDone    = "DONE"
)

// String returns the stored form of the status.
func (s Status) String() string {
	if s == StatusDone {
		return storedDone
	}
	return storedPending
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// ParseStatus decodes a stored status. Only "DONE" means done; anything else,
// including the empty string, is pending.
func ParseStatus(s string) Status {
	if s == storedDone {
		return StatusDone
	}
	return StatusPending
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null decodes as pending.
func (s *Status) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = StatusPending
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode status: %w", err)
	}

	*s = ParseStatus(raw)
	return nil
}
