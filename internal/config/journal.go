package config

import (
	"fmt"
	"os"

	"github.com/taskfold/taskfold/internal/events"
)

// Journal is the persisted event log.
// This corresponds to journal.yaml. Undone is ordered nearest redo first.
type Journal struct {
	Version int             `yaml:"version"`
	Applied []events.Record `yaml:"applied"`
	Undone  []events.Record `yaml:"undone,omitempty"`
}

// LoadJournal loads the applied and undone events from dir. A missing file
// is an empty journal.
func LoadJournal(dir string) (applied, undone []events.Event, err error) {
	path := JournalFile(dir)

	if !FileExists(path) {
		return nil, nil, nil
	}

	var j Journal
	if err := LoadYAML(path, &j); err != nil {
		return nil, nil, err
	}

	applied, err = events.DecodeAll(j.Applied)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid journal %s: applied: %w", path, err)
	}
	undone, err = events.DecodeAll(j.Undone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid journal %s: undone: %w", path, err)
	}
	return applied, undone, nil
}

// SaveJournal writes the applied and undone events to dir.
func SaveJournal(dir string, applied, undone []events.Event) error {
	a, err := events.EncodeAll(applied)
	if err != nil {
		return err
	}
	u, err := events.EncodeAll(undone)
	if err != nil {
		return err
	}
	return SaveYAML(JournalFile(dir), &Journal{
		Version: 1,
		Applied: a,
		Undone:  u,
	})
}

// DeleteJournal removes the journal file from dir.
func DeleteJournal(dir string) error {
	path := JournalFile(dir)
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}
