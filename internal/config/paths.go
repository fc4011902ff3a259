// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the taskfold data directory.
	GlobalDirName = ".taskfold"

	// BackupsDirName is the name of the snapshot backups directory.
	BackupsDirName = "backups"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	SnapshotFileName = "snapshot.yaml"
	JournalFileName  = "journal.yaml"
)

// GlobalDir returns the path to the taskfold directory (~/.taskfold/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return globalFile(SettingsFileName)
}

// SnapshotFile returns the path to a data directory's snapshot.yaml file.
func SnapshotFile(dir string) string {
	return filepath.Join(dir, SnapshotFileName)
}

// JournalFile returns the path to a data directory's journal.yaml file.
func JournalFile(dir string) string {
	return filepath.Join(dir, JournalFileName)
}

// BackupsDir returns the path to a data directory's snapshot backups.
func BackupsDir(dir string) string {
	return filepath.Join(dir, BackupsDirName)
}

func globalFile(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureGlobalDir creates the taskfold directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
