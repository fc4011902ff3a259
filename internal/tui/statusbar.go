package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone   = 0
	confirmDelete = 1
	confirmCommit = 2
)

func renderStatusBar(m *Model, width int) string {
	switch m.confirmMode {
	case confirmDelete:
		return renderConfirmBar(fmt.Sprintf("Delete %q? (y/n)", m.confirmTask.Name), width)
	case confirmCommit:
		return renderConfirmBar("Commit all edits? They can no longer be undone. (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + m.help.ShortHelpView(currentKeys(m).ShortHelp())
	if m.note != "" {
		left = " " + lipgloss.NewStyle().Foreground(colorGreen).Render(m.note)
	}

	right := lipgloss.NewStyle().Foreground(colorDim).Render(
		fmt.Sprintf("%d edit(s) · %d undone", len(m.applied), len(m.undone))) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// currentKeys returns the key hints for the focused panel.
func currentKeys(m *Model) keyMap {
	if m.activeOverlay != overlayNone {
		return keyMap{short: []key.Binding{overlayKeys.Save, overlayKeys.Cancel}}
	}

	base := []key.Binding{globalKeys.Quit, globalKeys.Help, globalKeys.Tab}

	if m.focusedPanel == 0 {
		switch m.leftTab {
		case 0: // Tasks
			return keyMap{short: append(base,
				taskListKeys.Add, taskListKeys.Toggle, taskListKeys.Rename, taskListKeys.Delete,
				globalKeys.Undo, globalKeys.Redo)}
		case 1: // Settings
			return keyMap{short: append(base, settingsKeys.Down, settingsKeys.Enter, settingsKeys.Toggle)}
		}
	}
	return keyMap{short: append(base, scrollKeys.Down, globalKeys.Undo, globalKeys.Redo)}
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
