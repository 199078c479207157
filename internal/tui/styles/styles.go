// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused panels and keys
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Row background colors. Text on them is always white.
var (
	PendingColor = lipgloss.Color("#0288D1") // blue
	OverdueColor = lipgloss.Color("#D3302F") // red
	DoneColor    = lipgloss.Color("#2F7D33") // green
	RowText      = lipgloss.Color("#FFFFFF")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the window title
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// PanelTitle is the heading above each list
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)
)

// Row styles
var (
	RowPending = lipgloss.NewStyle().
			Background(PendingColor).
			Foreground(RowText)

	RowOverdue = lipgloss.NewStyle().
			Background(OverdueColor).
			Foreground(RowText)

	RowDone = lipgloss.NewStyle().
		Background(DoneColor).
		Foreground(RowText)

	// RowCursor is the marker in front of the cursor row of a focused list
	RowCursor = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	// EmptyList is shown inside a list with no rows
	EmptyList = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true).
			Italic(true)
)

// Panel styles
var (
	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	PanelFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Input styles
var (
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
		Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#3A3A3A"})

	ButtonKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)
)

// StatusBar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(0, 1)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true).
				Padding(0, 1)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogWarning is used for blocking notices
	DialogWarning = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)

	// DialogTitleWarning is the title of a blocking notice
	DialogTitleWarning = lipgloss.NewStyle().
				Bold(true).
				Foreground(WarningColor).
				MarginBottom(1)

	// DialogHint is the footer line of a dialog
	DialogHint = lipgloss.NewStyle().
			Foreground(Subtle).
			MarginTop(1)
)
