package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskfold/taskfold/internal/config"
)

func startWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(w.Stop)
	return w
}

func waitFor(t *testing.T, w *Watcher, want EventType) Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case e := <-w.Events():
			if e.Type == want {
				return e
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event", want)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	tests := []struct {
		file string
		want EventType
	}{
		{config.JournalFileName, EventJournalChanged},
		{config.SnapshotFileName, EventSnapshotChanged},
		{config.SettingsFileName, EventSettingsChanged},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dir := t.TempDir()
			w := startWatcher(t, dir)

			path := filepath.Join(dir, tt.file)
			if err := config.SaveYAML(path, map[string]int{"version": 1}); err != nil {
				t.Fatal(err)
			}

			e := waitFor(t, w, tt.want)
			if e.Path != path {
				t.Errorf("Path = %s, want %s", e.Path, path)
			}
		})
	}
}

func TestWatcherReportsJournalRemoval(t *testing.T) {
	dir := t.TempDir()
	path := config.JournalFile(dir)
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := startWatcher(t, dir)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, EventJournalChanged)
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)
	path := config.JournalFile(dir)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	waitFor(t, w, EventJournalChanged)

	select {
	case e := <-w.Events():
		t.Errorf("unexpected second event: %+v", e)
	case <-time.After(3 * DebounceInterval):
	}
}

func TestClassifyIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ignored := []string{
		filepath.Join(dir, ".journal.yaml.123.tmp"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, config.BackupsDirName, config.SnapshotFileName),
	}
	for _, path := range ignored {
		if _, ok := w.classify(path); ok {
			t.Errorf("classify(%s) reported a change", path)
		}
	}
}

func TestStopTwice(t *testing.T) {
	w := startWatcher(t, t.TempDir())
	w.Stop()
	w.Stop()
}
