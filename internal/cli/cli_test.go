package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
	"github.com/taskfold/taskfold/internal/session"
	"github.com/taskfold/taskfold/internal/watcher"
)

func TestParseTime(t *testing.T) {
	orig := time.Local
	time.Local = time.UTC
	t.Cleanup(func() { time.Local = orig })

	tests := []struct {
		in      string
		want    string // RFC3339, "" for nil
		wantErr bool
	}{
		{"", "", false},
		{"none", "", false},
		{"NONE", "", false},
		{"2024-05-01", "2024-05-01T00:00:00Z", false},
		{"2024-05-01T09:30", "2024-05-01T09:30:00Z", false},
		{"2024-05-01T09:30:00+02:00", "2024-05-01T07:30:00Z", false},
		{"tomorrow", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTime(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == "" {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			if got == nil || got.Format(time.RFC3339) != tt.want {
				t.Errorf("got %v, want %s", got, tt.want)
			}
		})
	}
}

func TestFilterTasks(t *testing.T) {
	home := models.NewTask("home").AddArea("Home").AddContext("Phone")
	work := models.NewTask("work").AddProject("Launch")
	done := models.NewTask("done").AddArea("Home").MarkComplete()
	tasks := []models.Task{home, work, done}

	tests := []struct {
		name   string
		filter listFilter
		want   []string
	}{
		{"open only", listFilter{}, []string{"home", "work"}},
		{"all", listFilter{All: true}, []string{"home", "work", "done"}},
		{"area", listFilter{All: true, Area: "Home"}, []string{"home", "done"}},
		{"context", listFilter{Context: "Phone"}, []string{"home"}},
		{"project", listFilter{Project: "Launch"}, []string{"work"}},
		{"no match", listFilter{Project: "Other"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, task := range filterTasks(tasks, tt.filter) {
				got = append(got, task.Name)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatTags(t *testing.T) {
	task := models.NewTask("x").AddContext("Errands").AddProject("House").AddArea("Home")
	if got, want := formatTags(task), "@Errands +House #Home"; got != want {
		t.Errorf("formatTags = %q, want %q", got, want)
	}
	if got := formatTags(models.NewTask("y")); got != "" {
		t.Errorf("formatTags of untagged task = %q", got)
	}
}

// run executes the CLI with args against dir and returns its output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	addContexts, addAreas, addProjects = nil, nil, nil
	addDue, addStart, addParent = "", "", ""
	listAll, listContext, listProject, listArea = false, "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--dir", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	if err != nil {
		t.Fatalf("taskfold %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func present(t *testing.T, dir string) []models.Task {
	t.Helper()
	s, err := session.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return s.PresentState()
}

func TestCLIEditUndoCommit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	mustRun(t, dir, "add", "Buy", "milk", "--context", "Errands")
	tasks := present(t, dir)
	if len(tasks) != 1 || tasks[0].Name != "Buy milk" || !tasks[0].HasContext("Errands") {
		t.Fatalf("after add: %+v", tasks)
	}
	id := tasks[0].ID.String()[:8]

	mustRun(t, dir, "done", id)
	mustRun(t, dir, "edit", "project", "add", id, "Groceries")

	out := mustRun(t, dir, "list")
	if strings.Contains(out, "Buy milk") {
		t.Errorf("completed task listed without --all:\n%s", out)
	}
	out = mustRun(t, dir, "list", "--all")
	if !strings.Contains(out, "+Groceries") {
		t.Errorf("list --all missing project tag:\n%s", out)
	}

	out = mustRun(t, dir, "undo")
	if !strings.Contains(out, `add project "Groceries"`) {
		t.Errorf("undo output = %q", out)
	}
	mustRun(t, dir, "undo")
	if present(t, dir)[0].IsComplete() {
		t.Error("task still complete after two undos")
	}

	out = mustRun(t, dir, "history")
	if strings.Count(out, "undone") != 2 || strings.Count(out, "applied") != 1 {
		t.Errorf("history:\n%s", out)
	}

	mustRun(t, dir, "redo")
	if !present(t, dir)[0].IsComplete() {
		t.Error("task not complete after redo")
	}

	out = mustRun(t, dir, "commit")
	if !strings.Contains(out, "2 edit(s)") {
		t.Errorf("commit output = %q", out)
	}
	out = mustRun(t, dir, "undo")
	if !strings.Contains(out, "Nothing to undo") {
		t.Errorf("undo after commit = %q", out)
	}
	if !present(t, dir)[0].IsComplete() {
		t.Error("committed state lost")
	}
}

func TestCLIErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	if _, err := run(t, dir, "done", "deadbeef"); err == nil {
		t.Error("expected error for an unknown id")
	}
	if _, err := run(t, dir, "add", "x", "--due", "soon"); err == nil {
		t.Error("expected error for a bad due time")
	}
	if len(present(t, dir)) != 0 {
		t.Error("failed commands changed state")
	}

	mustRun(t, dir, "add", "parent")
	id := present(t, dir)[0].ID.String()
	if _, err := run(t, dir, "edit", "parent", id, id); err == nil {
		t.Error("expected error for a self parent")
	}
}

func TestCLISettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	mustRun(t, dir, "settings", "set", "history.auto_commit", "true")
	mustRun(t, dir, "add", "A")

	out := mustRun(t, dir, "undo")
	if !strings.Contains(out, "Nothing to undo") {
		t.Errorf("auto-committed edit was undoable: %q", out)
	}
	if len(present(t, dir)) != 1 {
		t.Error("auto-committed task missing")
	}

	if _, err := run(t, dir, "settings", "set", "no.such.key", "x"); err == nil {
		t.Error("expected error for an unknown key")
	}
}

func TestWatchLoop(t *testing.T) {
	evs := make(chan watcher.Event, 2)
	evs <- watcher.Event{Type: watcher.EventJournalChanged}
	evs <- watcher.Event{Type: watcher.EventSnapshotChanged}
	close(evs)

	var got []watcher.EventType
	if err := watchLoop(context.Background(), evs, func(e watcher.Event) {
		got = append(got, e.Type)
	}); err != nil {
		t.Fatalf("watchLoop failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("handled %d events, want 2", len(got))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := watchLoop(ctx, make(chan watcher.Event), func(watcher.Event) {}); err != nil {
		t.Errorf("watchLoop after cancel = %v", err)
	}
}

func TestSummarize(t *testing.T) {
	a := models.NewTask("a")
	b := models.NewTask("b").MarkComplete()
	s := session.New([]models.Task{a, b})
	if _, err := s.NewEvent(events.SetName{ID: a.ID, Name: "A"}); err != nil {
		t.Fatal(err)
	}

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := summarize(watcher.Event{Type: watcher.EventJournalChanged}, s, at)
	want := "03:04:05 journal  2 task(s), 1 open, 1 edit(s), 0 undone"
	if got != want {
		t.Errorf("summarize = %q, want %q", got, want)
	}
}
