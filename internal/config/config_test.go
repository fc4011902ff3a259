package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
)

func TestLoadSnapshotMissing(t *testing.T) {
	tasks, err := LoadSnapshot(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	due := time.Date(2024, 11, 12, 18, 0, 0, 0, time.UTC)
	w := models.WeatherSunny
	parent := models.NewTask("Holiday")
	child := models.NewTask("Book flights").
		SetDueDate(&due).
		AddContext("Laptop").
		AddProject("Holiday").
		SetWeather(&w).
		SetParentTask(&parent.ID).
		MarkComplete()

	if err := SaveSnapshot(dir, []models.Task{parent, child}); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	got, err := LoadSnapshot(dir)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	c := got[1]
	if c.ID != child.ID || c.Name != "Book flights" {
		t.Errorf("task = %s %q", c.ID, c.Name)
	}
	if c.Due == nil || !c.Due.Equal(due) {
		t.Errorf("Due = %v, want %v", c.Due, due)
	}
	if !c.HasContext("Laptop") || !c.HasProject("Holiday") {
		t.Errorf("tags = %v / %v", c.Contexts, c.Projects)
	}
	if c.Weather == nil || *c.Weather != w {
		t.Errorf("Weather = %v", c.Weather)
	}
	if c.ParentTask == nil || *c.ParentTask != parent.ID {
		t.Errorf("ParentTask = %v", c.ParentTask)
	}
	if !c.IsComplete() || c.Completed.CompletedAt == nil {
		t.Errorf("Completed = %v", c.Completed)
	}
}

func TestSaveSnapshotBacksUpPrevious(t *testing.T) {
	dir := t.TempDir()

	if err := SaveSnapshot(dir, []models.Task{models.NewTask("first")}); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	backups, _ := ListBackups(dir)
	if len(backups) != 0 {
		t.Fatalf("expected no backups after first save, got %d", len(backups))
	}

	if err := SaveSnapshot(dir, []models.Task{models.NewTask("second")}); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	backups, err := ListBackups(dir)
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}

	var snap Snapshot
	if err := LoadYAML(backups[0], &snap); err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if len(snap.Tasks) != 1 || snap.Tasks[0].Name != "first" {
		t.Errorf("backup holds %v, want the first snapshot", snap.Tasks)
	}
}

func TestJournalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC)
	task := models.NewTask("Call plumber")
	applied := []events.Event{
		events.Stamped(events.AddTask{Task: task}, at),
		events.Stamped(events.AddContext{ID: task.ID, Context: "Phone"}, at),
	}
	undone := []events.Event{
		events.Stamped(events.MarkComplete{ID: task.ID}, at),
		events.Stamped(events.RemoveTask{ID: task.ID}, at),
	}

	if err := SaveJournal(dir, applied, undone); err != nil {
		t.Fatalf("SaveJournal failed: %v", err)
	}

	gotApplied, gotUndone, err := LoadJournal(dir)
	if err != nil {
		t.Fatalf("LoadJournal failed: %v", err)
	}
	if len(gotApplied) != 2 || len(gotUndone) != 2 {
		t.Fatalf("loaded %d applied / %d undone, want 2 / 2", len(gotApplied), len(gotUndone))
	}
	if gotApplied[0].Kind() != events.KindAddTask || gotApplied[1].Kind() != events.KindAddContext {
		t.Errorf("applied kinds = %s, %s", gotApplied[0].Kind(), gotApplied[1].Kind())
	}
	if gotUndone[0].Kind() != events.KindMarkComplete || gotUndone[1].Kind() != events.KindRemoveTask {
		t.Errorf("undone kinds = %s, %s", gotUndone[0].Kind(), gotUndone[1].Kind())
	}
	added := gotApplied[0].(events.AddTask).Task
	if added.ID != task.ID || added.Name != task.Name {
		t.Errorf("added task = %s %q", added.ID, added.Name)
	}
}

func TestLoadJournalRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	content := "version: 1\napplied:\n  - kind: teleport_task\n    data:\n      id: 6f1c2b9e-3f55-4c1b-9d51-1b6a7d0b9a11\n"
	if err := os.WriteFile(JournalFile(dir), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadJournal(dir)
	if !errors.Is(err, events.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDeleteJournal(t *testing.T) {
	dir := t.TempDir()
	if err := DeleteJournal(dir); err != nil {
		t.Fatalf("DeleteJournal on missing file failed: %v", err)
	}
	if err := SaveJournal(dir, nil, nil); err != nil {
		t.Fatalf("SaveJournal failed: %v", err)
	}
	if err := DeleteJournal(dir); err != nil {
		t.Fatalf("DeleteJournal failed: %v", err)
	}
	if FileExists(JournalFile(dir)) {
		t.Error("journal still exists")
	}
}

func TestSaveYAMLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.yaml")

	if err := SaveYAML(path, map[string]int{"a": 1}); err != nil {
		t.Fatalf("SaveYAML failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "file.yaml" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only file.yaml", names)
	}
}

func TestSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Version != 1 || s.Display.Theme != "system" {
		t.Errorf("unexpected defaults: %+v", s)
	}

	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"calendar.url", "https://dav.example.com/calendars/me/tasks/", false},
		{"display.show_completed", "true", false},
		{"display.show_completed", "sometimes", true},
		{"display.theme", "dark", false},
		{"display.theme", "neon", true},
		{"history.auto_commit", "yes", true},
		{"colour", "red", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := SetSetting(s, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetSetting(%s, %s) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}

	if err := SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded.Calendar.URL != "https://dav.example.com/calendars/me/tasks/" || !loaded.Display.ShowCompleted || loaded.Display.Theme != "dark" {
		t.Errorf("settings not persisted: %+v", loaded)
	}
}
