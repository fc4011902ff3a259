package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taskfold/taskfold/internal/models"
)

// Snapshot is the base task collection as last known from the calendar.
// This corresponds to snapshot.yaml.
type Snapshot struct {
	Version  int           `yaml:"version"`
	SyncedAt *time.Time    `yaml:"synced_at,omitempty"`
	Tasks    []models.Task `yaml:"tasks"`
}

// LoadSnapshot loads the base tasks from dir. A missing file is an empty
// snapshot.
func LoadSnapshot(dir string) ([]models.Task, error) {
	path := SnapshotFile(dir)

	if !FileExists(path) {
		return nil, nil
	}

	var snap Snapshot
	if err := LoadYAML(path, &snap); err != nil {
		return nil, err
	}
	return snap.Tasks, nil
}

// SaveSnapshot writes tasks as the base snapshot in dir. The previous
// snapshot, if any, is copied to the backups directory first.
func SaveSnapshot(dir string, tasks []models.Task) error {
	path := SnapshotFile(dir)
	if FileExists(path) {
		if err := backupSnapshot(dir); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	return SaveYAML(path, &Snapshot{
		Version:  1,
		SyncedAt: &now,
		Tasks:    tasks,
	})
}

// ListBackups returns the snapshot backup files in dir, oldest first.
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(BackupsDir(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(BackupsDir(dir), e.Name()))
	}
	return paths, nil
}

func backupSnapshot(dir string) error {
	data, err := os.ReadFile(SnapshotFile(dir))
	if err != nil {
		return fmt.Errorf("failed to read snapshot for backup: %w", err)
	}

	backups := BackupsDir(dir)
	if err := os.MkdirAll(backups, 0o755); err != nil {
		return fmt.Errorf("failed to create backups dir: %w", err)
	}

	name := "snapshot-" + time.Now().UTC().Format("20060102T150405.000000000") + ".yaml"
	if err := os.WriteFile(filepath.Join(backups, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot backup: %w", err)
	}
	return nil
}
