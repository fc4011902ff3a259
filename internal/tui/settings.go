package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskfold/taskfold/internal/models"
)

// FieldType defines the type of a settings field.
type FieldType int

const (
	fieldText FieldType = iota
	fieldToggle
)

// SettingsField is a single field in the settings form.
type SettingsField struct {
	Label     string
	Key       string // Dotted settings key, as accepted by config.SetSetting
	Value     string
	BoolValue bool
	Type      FieldType
}

// SettingsForm manages the settings tab.
type SettingsForm struct {
	fields  []SettingsField
	cursor  int
	editing bool
	input   textinput.Model
	width   int
	height  int
}

// NewSettingsForm creates a new settings form.
func NewSettingsForm() *SettingsForm {
	ti := textinput.New()
	ti.CharLimit = 200
	return &SettingsForm{
		input: ti,
	}
}

// Load populates fields from settings.
func (s *SettingsForm) Load(settings *models.Settings) {
	s.fields = []SettingsField{
		{Label: "Show completed", Key: "display.show_completed", BoolValue: settings.Display.ShowCompleted, Type: fieldToggle},
		{Label: "Auto-commit", Key: "history.auto_commit", BoolValue: settings.History.AutoCommit, Type: fieldToggle},
		{Label: "Theme", Key: "display.theme", Value: settings.Display.Theme, Type: fieldText},
		{Label: "Date layout", Key: "display.date_layout", Value: settings.Display.DateLayout, Type: fieldText},
		{Label: "Calendar URL", Key: "calendar.url", Value: settings.Calendar.URL, Type: fieldText},
		{Label: "Calendar user", Key: "calendar.username", Value: settings.Calendar.Username, Type: fieldText},
	}
	if s.cursor >= len(s.fields) {
		s.cursor = len(s.fields) - 1
	}
}

// SetSize updates dimensions.
func (s *SettingsForm) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.Width = width - 24
}

// MoveUp moves cursor up.
func (s *SettingsForm) MoveUp() {
	if !s.editing && s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves cursor down.
func (s *SettingsForm) MoveDown() {
	if !s.editing && s.cursor < len(s.fields)-1 {
		s.cursor++
	}
}

// Toggle flips a boolean field and returns the new value to save.
func (s *SettingsForm) Toggle() (changed bool, key, value string) {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false, "", ""
	}
	f := &s.fields[s.cursor]
	if f.Type != fieldToggle {
		return false, "", ""
	}
	f.BoolValue = !f.BoolValue
	return true, f.Key, strconv.FormatBool(f.BoolValue)
}

// StartEdit begins inline editing of the current text field.
func (s *SettingsForm) StartEdit() bool {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false
	}
	f := s.fields[s.cursor]
	if f.Type != fieldText {
		return false
	}
	s.editing = true
	s.input.SetValue(f.Value)
	s.input.CursorEnd()
	s.input.Focus()
	return true
}

// FinishEdit confirms the current edit and returns the value to save.
// Validation happens when the value is saved.
func (s *SettingsForm) FinishEdit() (changed bool, key, value string) {
	if !s.editing {
		return false, "", ""
	}
	s.editing = false
	s.input.Blur()

	f := &s.fields[s.cursor]
	newVal := strings.TrimSpace(s.input.Value())
	if newVal == f.Value {
		return false, "", ""
	}
	return true, f.Key, newVal
}

// CancelEdit cancels the current edit.
func (s *SettingsForm) CancelEdit() {
	s.editing = false
	s.input.Blur()
}

// IsEditing returns whether a field is being edited.
func (s *SettingsForm) IsEditing() bool {
	return s.editing
}

// InputModel returns the text input model for Update forwarding.
func (s *SettingsForm) InputModel() *textinput.Model {
	return &s.input
}

// View renders the settings form.
func (s *SettingsForm) View() string {
	if len(s.fields) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("Loading settings...")
	}

	var lines []string
	for i, f := range s.fields {
		var line string
		label := settingsLabelStyle.Render(f.Label + ":")

		switch {
		case f.Type == fieldToggle:
			val := settingsToggleOff.Render("[OFF]")
			if f.BoolValue {
				val = settingsToggleOn.Render("[ON]")
			}
			line = label + " " + val
		case s.editing && i == s.cursor:
			line = label + " " + s.input.View()
		default:
			val := settingsValueStyle.Render(f.Value)
			if f.Value == "" {
				val = lipgloss.NewStyle().Foreground(colorDim).Render("(empty)")
			}
			line = label + " " + val
		}

		if i == s.cursor {
			line = settingsCursorStyle.Width(s.width).Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
