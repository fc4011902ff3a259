package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/session"
)

// openSession loads the session stored in the data directory.
func openSession() (*session.Session, string, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, "", err
	}
	s, err := session.Load(dir)
	if err != nil {
		return nil, "", err
	}
	return s, dir, nil
}

// record applies evs in order and saves the journal. Nothing is saved if
// any event is rejected. With history.auto_commit set the result is folded
// into the snapshot straight away.
func record(evs ...events.Event) (*session.Session, error) {
	s, dir, err := openSession()
	if err != nil {
		return nil, err
	}
	for _, e := range evs {
		if _, err := s.NewEvent(e); err != nil {
			return nil, err
		}
	}
	if err := s.Save(dir); err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.History.AutoCommit {
		if err := s.Commit(dir); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// timeLayouts are the accepted input formats, tried in order. Layouts
// without a zone are read in local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTime parses a CLI time argument. "none" and "" clear the value.
func parseTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q: expected RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD", s)
}
