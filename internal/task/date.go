package task

import "time"

// DueDateLayout is the only accepted due date format (YYYY-MM-DD).
const DueDateLayout = "2006-01-02"

// ParseDueDate parses s as a calendar date at local midnight.
// The second return value is false for malformed input or impossible dates.
func ParseDueDate(s string) (time.Time, bool) {
	if len(s) != len(DueDateLayout) {
		return time.Time{}, false
	}

	d, err := time.ParseInLocation(DueDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}

// ValidDueDate reports whether s is an acceptable due date.
func ValidDueDate(s string) bool {
	_, ok := ParseDueDate(s)
	return ok
}
