package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DuePromptLabel is shown above the due date input.
const DuePromptLabel = "Enter due date (e.g., YYYY-MM-DD):"

// DuePrompt is the modal asking for a due date after a description was entered.
// The value is passed to the store untrimmed.
type DuePrompt struct {
	Input textinput.Model

	// Description captured from the entry when the prompt opened
	Description string
}

// NewDuePrompt creates a focused prompt for description.
func NewDuePrompt(description string) *DuePrompt {
	input := textinput.New()
	input.Placeholder = "YYYY-MM-DD"
	input.Focus()
	input.CharLimit = 32
	input.Width = 20

	return &DuePrompt{
		Input:       input,
		Description: description,
	}
}

// Update handles input events for the prompt.
func (p *DuePrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return cmd
}

// Value returns the current input value.
func (p *DuePrompt) Value() string {
	return p.Input.Value()
}
