package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"past pending", Task{DueDate: "2000-01-01"}, true},
		{"earlier today is overdue", Task{DueDate: "2026-03-10"}, true},
		{"tomorrow", Task{DueDate: "2026-03-11"}, false},
		{"far future", Task{DueDate: "2099-01-01"}, false},
		{"past but done", Task{DueDate: "2000-01-01", Status: StatusDone}, false},
		{"unparsable date", Task{DueDate: "someday"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.IsOverdue(now))
		})
	}
}

func TestToggleTwiceRestoresStatus(t *testing.T) {
	tk := Task{Description: "Buy milk", DueDate: "2099-01-01"}

	tk.Toggle()
	assert.True(t, tk.IsDone())

	tk.Toggle()
	assert.True(t, tk.IsPending())
}

func TestStatusDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Status
	}{
		{"missing", `{"task":"a","due_date":"2024-01-01"}`, StatusPending},
		{"done", `{"task":"a","due_date":"2024-01-01","status":"DONE"}`, StatusDone},
		{"to do", `{"task":"a","due_date":"2024-01-01","status":"TO DO"}`, StatusPending},
		{"unknown value", `{"task":"a","due_date":"2024-01-01","status":"done"}`, StatusPending},
		{"null", `{"task":"a","due_date":"2024-01-01","status":null}`, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tk Task
			require.NoError(t, json.Unmarshal([]byte(tt.json), &tk))
			assert.Equal(t, tt.want, tk.Status)
		})
	}
}

func TestStatusDecodingRejectsNonString(t *testing.T) {
	var tk Task
	err := json.Unmarshal([]byte(`{"task":"a","due_date":"2024-01-01","status":7}`), &tk)
	assert.Error(t, err)
}

func TestTaskEncodingOmitsID(t *testing.T) {
	tk := Task{ID: "abc", Description: "Pay rent", DueDate: "2000-01-01", Status: StatusDone}

	data, err := json.Marshal(tk)
	require.NoError(t, err)
	assert.JSONEq(t, `{"task":"Pay rent","due_date":"2000-01-01","status":"DONE"}`, string(data))
}
