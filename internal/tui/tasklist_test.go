package tui

import (
	"testing"

	"github.com/taskfold/taskfold/internal/models"
)

func TestTreeOrder(t *testing.T) {
	root := models.NewTask("root")
	other := models.NewTask("other")
	child := models.NewTask("child").SetParentTask(&root.ID)
	grandchild := models.NewTask("grandchild").SetParentTask(&child.ID)

	// Children listed before their parents still nest under them.
	items := treeOrder([]models.Task{grandchild, child, root, other})

	want := []struct {
		name  string
		depth int
	}{
		{"root", 0},
		{"child", 1},
		{"grandchild", 2},
		{"other", 0},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i].task.Name != w.name || items[i].depth != w.depth {
			t.Errorf("item %d = %s@%d, want %s@%d", i, items[i].task.Name, items[i].depth, w.name, w.depth)
		}
	}
}

func TestTreeOrderCycle(t *testing.T) {
	a := models.NewTask("a")
	b := models.NewTask("b").SetParentTask(&a.ID)
	a = a.SetParentTask(&b.ID)

	items := treeOrder([]models.Task{a, b})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestTaskListNavigation(t *testing.T) {
	a := models.NewTask("a")
	b := models.NewTask("b")
	done := models.NewTask("done").MarkComplete()

	tl := NewTaskList()
	tl.SetTasks([]models.Task{a, b, done})

	got, ok := tl.SelectedTask()
	if !ok || got.ID != a.ID {
		t.Fatalf("initial selection = %q, %t; want a", got.Name, ok)
	}

	tl.MoveDown()
	tl.MoveDown()
	if got, _ := tl.SelectedTask(); got.ID != b.ID {
		t.Errorf("selection past the end = %q, want b", got.Name)
	}

	tl.SetShowDone(true)
	tl.MoveDown()
	if got, _ := tl.SelectedTask(); got.ID != done.ID {
		t.Errorf("selection after header = %q, want done", got.Name)
	}

	tl.MoveUp()
	if got, _ := tl.SelectedTask(); got.ID != b.ID {
		t.Errorf("selection before header = %q, want b", got.Name)
	}
}

func TestTaskListKeepsSelection(t *testing.T) {
	a := models.NewTask("a")
	b := models.NewTask("b")

	tl := NewTaskList()
	tl.SetTasks([]models.Task{a, b})
	if !tl.Select(b.ID) {
		t.Fatal("Select(b) returned false")
	}

	c := models.NewTask("c")
	tl.SetTasks([]models.Task{c, a, b.SetName("B")})
	if got, _ := tl.SelectedTask(); got.ID != b.ID || got.Name != "B" {
		t.Errorf("selection = %q, want B", got.Name)
	}

	tl.SetTasks(nil)
	if _, ok := tl.SelectedTask(); ok {
		t.Error("empty list reports a selection")
	}
}
