package tui

import (
	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/models"
	"github.com/taskfold/taskfold/internal/session"
	"github.com/taskfold/taskfold/internal/watcher"
)

// SessionLoadedMsg carries a session freshly read from disk.
type SessionLoadedMsg struct {
	Session *session.Session
}

// SettingsLoadedMsg carries settings freshly read from disk.
type SettingsLoadedMsg struct {
	Settings *models.Settings
}

// StateChangedMsg signals the session was edited and saved. Note describes
// the change for the status bar and Task is the task it touched, if any.
type StateChangedMsg struct {
	Note string
	Task uuid.UUID
}

// FileChangedMsg signals a data file changed on disk.
type FileChangedMsg struct {
	Event watcher.Event
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearNoteMsg clears the status note.
type ClearNoteMsg struct{}
