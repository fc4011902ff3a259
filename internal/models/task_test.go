package models

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func withClock(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func TestNewTask(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	withClock(t, ts)

	task := NewTask("Buy milk")
	if task.ID == uuid.Nil {
		t.Fatal("expected a random id")
	}
	if task.Name != "Buy milk" {
		t.Errorf("Name = %q, want %q", task.Name, "Buy milk")
	}
	if !task.CreationDate.Equal(ts) || !task.LastModified.Equal(ts) {
		t.Errorf("timestamps = %v/%v, want %v", task.CreationDate, task.LastModified, ts)
	}
	if task.IsComplete() {
		t.Error("new task should be incomplete")
	}
}

func TestMutatorsStampLastModified(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)
	withClock(t, created)
	base := NewTask("Write report")
	withClock(t, edited)

	due := edited.Add(24 * time.Hour)
	tod := TimeOfDay{Period: PeriodEvening}
	w := WeatherRainy
	parent := uuid.New()

	tests := []struct {
		name  string
		apply func(Task) Task
		check func(t *testing.T, got Task)
	}{
		{"mark complete", Task.MarkComplete, func(t *testing.T, got Task) {
			if !got.Completed.Done || got.Completed.CompletedAt == nil || !got.Completed.CompletedAt.Equal(edited) {
				t.Errorf("Completed = %v", got.Completed)
			}
		}},
		{"mark incomplete", func(x Task) Task { return x.MarkComplete().MarkIncomplete() }, func(t *testing.T, got Task) {
			if got.Completed.Done || got.Completed.CompletedAt != nil {
				t.Errorf("Completed = %v", got.Completed)
			}
		}},
		{"set name", func(x Task) Task { return x.SetName("Draft report") }, func(t *testing.T, got Task) {
			if got.Name != "Draft report" {
				t.Errorf("Name = %q", got.Name)
			}
		}},
		{"set start date", func(x Task) Task { return x.SetStartDate(&edited) }, func(t *testing.T, got Task) {
			if got.StartDate == nil || !got.StartDate.Equal(edited) {
				t.Errorf("StartDate = %v", got.StartDate)
			}
		}},
		{"set due date", func(x Task) Task { return x.SetDueDate(&due) }, func(t *testing.T, got Task) {
			if got.Due == nil || !got.Due.Equal(due) {
				t.Errorf("Due = %v", got.Due)
			}
		}},
		{"set money needed", func(x Task) Task { return x.SetMoneyNeeded(true) }, func(t *testing.T, got Task) {
			if !got.MoneyNeeded {
				t.Error("MoneyNeeded = false")
			}
		}},
		{"set time of day", func(x Task) Task { return x.SetTimeOfDay(&tod) }, func(t *testing.T, got Task) {
			if got.TimeOfDay == nil || got.TimeOfDay.Period != PeriodEvening {
				t.Errorf("TimeOfDay = %v", got.TimeOfDay)
			}
		}},
		{"set weather", func(x Task) Task { return x.SetWeather(&w) }, func(t *testing.T, got Task) {
			if got.Weather == nil || *got.Weather != WeatherRainy {
				t.Errorf("Weather = %v", got.Weather)
			}
		}},
		{"set parent", func(x Task) Task { return x.SetParentTask(&parent) }, func(t *testing.T, got Task) {
			if got.ParentTask == nil || *got.ParentTask != parent {
				t.Errorf("ParentTask = %v", got.ParentTask)
			}
		}},
		{"add context", func(x Task) Task { return x.AddContext("Errands") }, func(t *testing.T, got Task) {
			if !reflect.DeepEqual(got.Contexts, []string{"Errands"}) {
				t.Errorf("Contexts = %v", got.Contexts)
			}
		}},
		{"add area", func(x Task) Task { return x.AddArea("Health") }, func(t *testing.T, got Task) {
			if !reflect.DeepEqual(got.Areas, []string{"Health"}) {
				t.Errorf("Areas = %v", got.Areas)
			}
		}},
		{"add project", func(x Task) Task { return x.AddProject("Garden") }, func(t *testing.T, got Task) {
			if !reflect.DeepEqual(got.Projects, []string{"Garden"}) {
				t.Errorf("Projects = %v", got.Projects)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(base)
			if !got.LastModified.Equal(edited) {
				t.Errorf("LastModified = %v, want %v", got.LastModified, edited)
			}
			if got.ID != base.ID || !got.CreationDate.Equal(base.CreationDate) {
				t.Error("identity fields changed")
			}
			if !base.LastModified.Equal(created) {
				t.Error("receiver was modified")
			}
			tt.check(t, got)
		})
	}
}

func TestAddKeepsDuplicates(t *testing.T) {
	task := NewTask("Call mum").AddContext("Phone").AddContext("Phone")
	if !reflect.DeepEqual(task.Contexts, []string{"Phone", "Phone"}) {
		t.Errorf("Contexts = %v, want two entries", task.Contexts)
	}
}

func TestRemoveDropsEveryMatch(t *testing.T) {
	task := NewTask("Clean").
		AddContext("Home").AddContext("Laptop").AddContext("Home").
		AddArea("Chores").AddArea("Family").AddArea("Chores").
		AddProject("Spring").AddProject("Move").AddProject("Spring")

	got := task.RemoveContext("Home").RemoveArea("Chores").RemoveProject("Spring")

	if !reflect.DeepEqual(got.Contexts, []string{"Laptop"}) {
		t.Errorf("Contexts = %v", got.Contexts)
	}
	if !reflect.DeepEqual(got.Areas, []string{"Family"}) {
		t.Errorf("Areas = %v", got.Areas)
	}
	if !reflect.DeepEqual(got.Projects, []string{"Move"}) {
		t.Errorf("Projects = %v", got.Projects)
	}
}

func TestRemoveProjectLeavesContextsAlone(t *testing.T) {
	task := NewTask("Paint").AddContext("Home").AddProject("Home").AddProject("Shed")

	got := task.RemoveProject("Home")

	if !reflect.DeepEqual(got.Contexts, []string{"Home"}) {
		t.Errorf("Contexts = %v, want [Home]", got.Contexts)
	}
	if !reflect.DeepEqual(got.Projects, []string{"Shed"}) {
		t.Errorf("Projects = %v, want [Shed]", got.Projects)
	}
}

func TestRemoveAreaRemoves(t *testing.T) {
	task := NewTask("Stretch").AddArea("Health")

	got := task.RemoveArea("Health")

	if len(got.Areas) != 0 {
		t.Errorf("Areas = %v, want empty", got.Areas)
	}
}

func TestMutatorsDoNotShareBackingArrays(t *testing.T) {
	base := NewTask("Shop").AddContext("Errands")
	base.Contexts = append(make([]string, 0, 8), base.Contexts...)

	a := base.AddContext("Town")
	b := base.AddContext("Mall")

	if a.Contexts[1] != "Town" || b.Contexts[1] != "Mall" {
		t.Errorf("aliased contexts: a=%v b=%v", a.Contexts, b.Contexts)
	}
	if len(base.Contexts) != 1 {
		t.Errorf("base contexts = %v", base.Contexts)
	}
}

func TestChildren(t *testing.T) {
	parent := NewTask("Trip")
	child := NewTask("Pack").SetParentTask(&parent.ID)
	other := NewTask("Read")

	got := Children([]Task{parent, child, other}, parent.ID)
	if len(got) != 1 || got[0].ID != child.ID {
		t.Errorf("Children = %v", got)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"morning", PeriodMorning, false},
		{"Evening", PeriodEvening, false},
		{"2024-05-01T07:30:00Z", PeriodSpecific, false},
		{"teatime", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got.Period != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got.Period, tt.want)
			}
		})
	}
}

func TestParseWeather(t *testing.T) {
	if w, err := ParseWeather("Sunny"); err != nil || w != WeatherSunny {
		t.Errorf("ParseWeather(Sunny) = %v, %v", w, err)
	}
	if _, err := ParseWeather("foggy"); err == nil {
		t.Error("expected error for unknown weather")
	}
}
