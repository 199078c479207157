package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain date", "2099-01-01", true},
		{"leap day", "2024-02-29", true},
		{"non leap year", "2023-02-29", false},
		{"month out of range", "2024-13-40", false},
		{"day out of range", "2024-04-31", false},
		{"words", "not-a-date", false},
		{"empty", "", false},
		{"single digit month", "2024-1-05", false},
		{"slashes", "2024/01/05", false},
		{"trailing text", "2024-01-05x", false},
		{"leading space", " 2024-01-05", false},
		{"two digit year", "24-01-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDueDate(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.valid, ValidDueDate(tt.input))
			if !tt.valid {
				assert.True(t, d.IsZero())
			}
		})
	}
}

func TestParseDueDateIsLocalMidnight(t *testing.T) {
	d, ok := ParseDueDate("2030-06-15")
	if !ok {
		t.Fatal("expected date to parse")
	}

	want := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.Local)
	assert.True(t, d.Equal(want), "got %v, want %v", d, want)
}
