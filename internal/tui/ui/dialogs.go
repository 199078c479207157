package ui

import (
	"strings"

	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderDuePrompt renders the due date dialog opened after a description is
// entered.
func (r *Renderer) renderDuePrompt() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render("Due Date"))
	b.WriteString("\n")
	b.WriteString(state.DuePromptLabel)
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(r.DuePrompt.Input.View()))
	b.WriteString("\n")
	b.WriteString(styles.DialogHint.Render("Enter: OK  •  Esc: Cancel"))

	return styles.Dialog.Render(b.String())
}

// renderNotice renders a blocking message. Any key dismisses it.
func (r *Renderer) renderNotice() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitleWarning.Render(r.Notice.Title))
	b.WriteString("\n")
	b.WriteString(r.Notice.Message)
	b.WriteString("\n")

	hint := "Press any key to continue"
	if r.Notice.Fatal {
		hint = "Press any key to quit"
	}
	b.WriteString(styles.DialogHint.Render(hint))

	return styles.DialogWarning.Render(b.String())
}

func (r *Renderer) renderHelp() string {
	h := r.Help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(h.View(r.Keymap))
	b.WriteString("\n")
	b.WriteString(styles.DialogHint.Render("?/Esc: Close"))

	return styles.Dialog.Render(b.String())
}
