// Package state holds the application state shared by the update logic and
// the renderer.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui/components"
)

// Focus is the widget receiving key input.
type Focus int

const (
	FocusEntry Focus = iota
	FocusPending
	FocusDone
)

// FocusFor returns the focus value of a list view.
func FocusFor(v components.View) Focus {
	if v == components.ViewDone {
		return FocusDone
	}
	return FocusPending
}

// Selection is the single current selection: a task in one of the two lists.
type Selection struct {
	View   components.View
	TaskID string
}

// Notice is a blocking message the user must dismiss.
type Notice struct {
	Title   string
	Message string
	// Fatal notices quit the program when dismissed.
	Fatal bool
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *store.Store
	Config *config.Config
	Log    *log.Logger
	Clock  func() time.Time

	// Lists
	PendingList *components.TaskListModel
	DoneList    *components.TaskListModel

	// Focus and selection
	Focus     Focus
	Selection *Selection

	// Add flow
	Entry     textinput.Model
	DuePrompt *DuePrompt

	// UI state
	Notice    *Notice
	StatusMsg string
	ShowHelp  bool
	Help      help.Model
	Keymap    KeyMap
	Width     int
	Height    int

	// Reminders already sent, by task ID
	NotifiedTasks map[string]bool

	// Err is set when the program must exit with an error.
	Err error
}

// New creates the state for s and cfg with the entry focused.
func New(s *store.Store, cfg *config.Config, logger *log.Logger) *State {
	entry := textinput.New()
	entry.Placeholder = "New task..."
	entry.CharLimit = 200
	entry.Width = cfg.UI.DescriptionWidth + cfg.UI.DueDateWidth
	entry.Focus()

	st := &State{
		Store:         s,
		Config:        cfg,
		Log:           logger,
		Clock:         time.Now,
		PendingList:   components.NewTaskList(components.ViewPending, cfg.UI.DescriptionWidth, cfg.UI.DueDateWidth, cfg.UI.ListHeight),
		DoneList:      components.NewTaskList(components.ViewDone, cfg.UI.DescriptionWidth, cfg.UI.DueDateWidth, cfg.UI.ListHeight),
		Focus:         FocusEntry,
		Entry:         entry,
		Help:          help.New(),
		Keymap:        DefaultKeymap(),
		NotifiedTasks: make(map[string]bool),
	}

	return st
}

// List returns the panel for view.
func (s *State) List(v components.View) *components.TaskListModel {
	if v == components.ViewDone {
		return s.DoneList
	}
	return s.PendingList
}

// FocusedList returns the focused panel, or nil when the entry has focus.
func (s *State) FocusedList() *components.TaskListModel {
	switch s.Focus {
	case FocusPending:
		return s.PendingList
	case FocusDone:
		return s.DoneList
	default:
		return nil
	}
}

// ToggleLabel is the label of the contextual status action.
func (s *State) ToggleLabel() string {
	if s.Selection == nil {
		return ""
	}
	if s.Selection.View == components.ViewDone {
		return "Mark as To Do"
	}
	return "Mark as Done"
}

// IsPromptingDue returns true while the due date prompt is open.
func (s *State) IsPromptingDue() bool {
	return s.DuePrompt != nil
}
