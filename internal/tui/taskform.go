package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Task form modes.
const (
	formAdd    = "add"
	formRename = "rename"
)

// TaskForm is the add/rename task overlay form.
type TaskForm struct {
	mode   string
	taskID uuid.UUID  // Rename target
	parent *uuid.UUID // Parent for a new subtask
	label  string     // Context shown under the title

	nameInput textinput.Model
	width     int
}

// NewTaskForm creates a new task form.
func NewTaskForm(mode string, width int) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 200
	ti.Width = width - 8
	ti.Focus()

	return &TaskForm{
		mode:      mode,
		nameInput: ti,
		width:     width,
	}
}

// PreFill fills the form for renaming an existing task.
func (tf *TaskForm) PreFill(id uuid.UUID, name string) {
	tf.taskID = id
	tf.nameInput.SetValue(name)
	tf.nameInput.CursorEnd()
}

// SetParent makes the new task a subtask of the given task.
func (tf *TaskForm) SetParent(id uuid.UUID, name string) {
	tf.parent = &id
	tf.label = "Subtask of " + name
}

// Name returns the trimmed name.
func (tf *TaskForm) Name() string {
	return strings.TrimSpace(tf.nameInput.Value())
}

// NameInput returns the text input for Update forwarding.
func (tf *TaskForm) NameInput() *textinput.Model {
	return &tf.nameInput
}

// View renders the form.
func (tf *TaskForm) View() string {
	title := "Add Task"
	if tf.mode == formRename {
		title = "Rename Task"
	}

	parts := []string{overlayTitleStyle.Render(title)}
	if tf.label != "" {
		parts = append(parts, overlayDimStyle.Render(tf.label), "")
	}
	parts = append(parts,
		tf.nameInput.View(),
		"",
		overlayDimStyle.Render("Enter save  Esc cancel"),
	)
	return overlayStyle.Width(tf.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
