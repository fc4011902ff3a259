package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/session"
)

func loadSessionCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		s, err := session.Load(dir)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return SessionLoadedMsg{Session: s}
	}
}

func loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := config.LoadSettings()
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load settings: %w", err)}
		}
		return SettingsLoadedMsg{Settings: settings}
	}
}

// recordCmd validates and records e, saves the journal, and commits when
// autoCommit is set.
func recordCmd(s *session.Session, dir string, autoCommit bool, e events.Event) tea.Cmd {
	return func() tea.Msg {
		stamped, err := s.NewEvent(e)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if err := s.Save(dir); err != nil {
			return ErrorMsg{Err: err}
		}
		if autoCommit {
			if err := s.Commit(dir); err != nil {
				return ErrorMsg{Err: err}
			}
		}
		return StateChangedMsg{Note: events.Describe(stamped), Task: stamped.TaskID()}
	}
}

func undoCmd(s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		e, ok := s.Undo()
		if !ok {
			return StateChangedMsg{Note: "Nothing to undo"}
		}
		if err := s.Save(dir); err != nil {
			return ErrorMsg{Err: err}
		}
		return StateChangedMsg{Note: "Undid " + events.Describe(e), Task: e.TaskID()}
	}
}

func redoCmd(s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		e, ok := s.Redo()
		if !ok {
			return StateChangedMsg{Note: "Nothing to redo"}
		}
		if err := s.Save(dir); err != nil {
			return ErrorMsg{Err: err}
		}
		return StateChangedMsg{Note: "Redid " + events.Describe(e), Task: e.TaskID()}
	}
}

func commitCmd(s *session.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		n := len(s.Applied())
		if err := s.Commit(dir); err != nil {
			return ErrorMsg{Err: err}
		}
		return StateChangedMsg{Note: fmt.Sprintf("Committed %d edit(s)", n)}
	}
}

func saveSettingCmd(key, value string) tea.Cmd {
	return func() tea.Msg {
		settings, err := config.LoadSettings()
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load settings: %w", err)}
		}
		if err := config.SetSetting(settings, key, value); err != nil {
			return ErrorMsg{Err: err}
		}
		if err := config.SaveSettings(settings); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to save settings: %w", err)}
		}
		return SettingsLoadedMsg{Settings: settings}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoteAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoteMsg{}
	})
}
