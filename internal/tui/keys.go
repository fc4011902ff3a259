package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active outside overlays and prompts.
type GlobalKeys struct {
	Quit key.Binding
	Help key.Binding
	Tab  key.Binding
	Tab1 key.Binding
	Tab2 key.Binding
	Undo key.Binding
	Redo key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch panel"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1/2", "switch tab"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("1/2", "switch tab"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("Ctrl+r", "redo"),
	),
}

// TaskListKeys are active when the task list is focused.
type TaskListKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	AddSub  key.Binding
	Rename  key.Binding
	Delete  key.Binding
	ShowAll key.Binding
	Commit  key.Binding
}

var taskListKeys = TaskListKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "done/undone"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	AddSub: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "add subtask"),
	),
	Rename: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	ShowAll: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "show done"),
	),
	Commit: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "commit"),
	),
}

// SettingsKeys are active when the settings form is focused.
type SettingsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Enter  key.Binding
}

var settingsKeys = SettingsKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "edit"),
	),
}

// ScrollKeys are active when a right panel view is focused.
type ScrollKeys struct {
	Up   key.Binding
	Down key.Binding
}

var scrollKeys = ScrollKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "scroll"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "scroll"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Save   key.Binding
	Cancel key.Binding
}

var overlayKeys = OverlayKeys{
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}

// keyMap adapts a set of bindings to help.KeyMap.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

// fullKeyMap lists every binding for the help overlay, one column per
// context.
var fullKeyMap = keyMap{
	full: [][]key.Binding{
		{globalKeys.Quit, globalKeys.Help, globalKeys.Tab, globalKeys.Tab1, globalKeys.Undo, globalKeys.Redo},
		{taskListKeys.Down, taskListKeys.Toggle, taskListKeys.Add, taskListKeys.AddSub, taskListKeys.Rename, taskListKeys.Delete, taskListKeys.ShowAll, taskListKeys.Commit},
		{settingsKeys.Down, settingsKeys.Toggle, settingsKeys.Enter, overlayKeys.Save, overlayKeys.Cancel},
	},
}
