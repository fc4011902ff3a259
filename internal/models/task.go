// Package models contains shared data structures used across the application.
package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// now is the clock used to stamp creation and modification times.
var now = func() time.Time { return time.Now().UTC() }

// Task represents a single task.
// Task values are never modified in place: every mutator returns a new
// Task that shares nothing mutable with the receiver.
type Task struct {
	ID           uuid.UUID        `yaml:"id"`
	CreationDate time.Time        `yaml:"creation_date"`
	LastModified time.Time        `yaml:"last_modified"`
	Name         string           `yaml:"name"`
	Completed    CompletionStatus `yaml:"completed"`
	StartDate    *time.Time       `yaml:"start_date,omitempty"`
	Due          *time.Time       `yaml:"due,omitempty"`
	Contexts     []string         `yaml:"contexts,omitempty"`
	Areas        []string         `yaml:"areas,omitempty"`
	Projects     []string         `yaml:"projects,omitempty"`
	MoneyNeeded  bool             `yaml:"money_needed,omitempty"`
	TimeOfDay    *TimeOfDay       `yaml:"time_of_day,omitempty"`
	Weather      *Weather         `yaml:"weather,omitempty"`
	ParentTask   *uuid.UUID       `yaml:"parent_task,omitempty"` // Non-owning link, may dangle
}

// NewTask creates a new incomplete task with a random id.
func NewTask(name string) Task {
	ts := now()
	return Task{
		ID:           uuid.New(),
		CreationDate: ts,
		LastModified: ts,
		Name:         name,
		Completed:    Incomplete(),
	}
}

// clone returns a deep copy of t.
func (t Task) clone() Task {
	c := t
	c.Contexts = slices.Clone(t.Contexts)
	c.Areas = slices.Clone(t.Areas)
	c.Projects = slices.Clone(t.Projects)
	c.Completed = t.Completed.clone()
	c.StartDate = cloneTime(t.StartDate)
	c.Due = cloneTime(t.Due)
	if t.TimeOfDay != nil {
		tod := t.TimeOfDay.clone()
		c.TimeOfDay = &tod
	}
	if t.Weather != nil {
		w := *t.Weather
		c.Weather = &w
	}
	if t.ParentTask != nil {
		p := *t.ParentTask
		c.ParentTask = &p
	}
	return c
}

// modify stamps the last modified time on an already cloned task.
func (t Task) modify() Task {
	t.LastModified = now()
	return t
}

// MarkComplete returns a copy of the task completed now.
func (t Task) MarkComplete() Task {
	return t.MarkCompleteAt(now())
}

// MarkCompleteAt returns a copy of the task completed at the given time.
func (t Task) MarkCompleteAt(at time.Time) Task {
	c := t.clone()
	c.Completed = Completed(&at)
	return c.modify()
}

// MarkIncomplete returns a copy of the task marked incomplete.
func (t Task) MarkIncomplete() Task {
	c := t.clone()
	c.Completed = Incomplete()
	return c.modify()
}

// SetName returns a copy of the task with a new name.
func (t Task) SetName(name string) Task {
	c := t.clone()
	c.Name = name
	return c.modify()
}

// SetStartDate returns a copy of the task with a new start date. Nil clears it.
func (t Task) SetStartDate(start *time.Time) Task {
	c := t.clone()
	c.StartDate = cloneTime(start)
	return c.modify()
}

// SetDueDate returns a copy of the task with a new due date. Nil clears it.
func (t Task) SetDueDate(due *time.Time) Task {
	c := t.clone()
	c.Due = cloneTime(due)
	return c.modify()
}

// SetMoneyNeeded returns a copy of the task with the money-needed flag set.
func (t Task) SetMoneyNeeded(needed bool) Task {
	c := t.clone()
	c.MoneyNeeded = needed
	return c.modify()
}

// SetTimeOfDay returns a copy of the task with a new time of day. Nil clears it.
func (t Task) SetTimeOfDay(tod *TimeOfDay) Task {
	c := t.clone()
	c.TimeOfDay = nil
	if tod != nil {
		v := tod.clone()
		c.TimeOfDay = &v
	}
	return c.modify()
}

// SetWeather returns a copy of the task with a new weather tag. Nil clears it.
func (t Task) SetWeather(w *Weather) Task {
	c := t.clone()
	c.Weather = nil
	if w != nil {
		v := *w
		c.Weather = &v
	}
	return c.modify()
}

// AddContext returns a copy of the task with context appended.
// Duplicates are kept.
func (t Task) AddContext(context string) Task {
	c := t.clone()
	c.Contexts = append(c.Contexts, context)
	return c.modify()
}

// RemoveContext returns a copy of the task without any context equal to context.
func (t Task) RemoveContext(context string) Task {
	c := t.clone()
	c.Contexts = without(c.Contexts, context)
	return c.modify()
}

// AddArea returns a copy of the task with area appended.
func (t Task) AddArea(area string) Task {
	c := t.clone()
	c.Areas = append(c.Areas, area)
	return c.modify()
}

// RemoveArea returns a copy of the task without any area equal to area.
func (t Task) RemoveArea(area string) Task {
	c := t.clone()
	c.Areas = without(c.Areas, area)
	return c.modify()
}

// AddProject returns a copy of the task with project appended.
func (t Task) AddProject(project string) Task {
	c := t.clone()
	c.Projects = append(c.Projects, project)
	return c.modify()
}

// RemoveProject returns a copy of the task without any project equal to project.
func (t Task) RemoveProject(project string) Task {
	c := t.clone()
	c.Projects = without(c.Projects, project)
	return c.modify()
}

// SetParentTask returns a copy of the task linked to parent. Nil unlinks it.
func (t Task) SetParentTask(parent *uuid.UUID) Task {
	c := t.clone()
	c.ParentTask = nil
	if parent != nil {
		p := *parent
		c.ParentTask = &p
	}
	return c.modify()
}

// IsComplete returns true if the task has been completed.
func (t Task) IsComplete() bool {
	return t.Completed.Done
}

// HasContext returns true if any of the task's contexts equals context.
func (t Task) HasContext(context string) bool {
	return slices.Contains(t.Contexts, context)
}

// HasArea returns true if any of the task's areas equals area.
func (t Task) HasArea(area string) bool {
	return slices.Contains(t.Areas, area)
}

// HasProject returns true if any of the task's projects equals project.
func (t Task) HasProject(project string) bool {
	return slices.Contains(t.Projects, project)
}

// Children returns the tasks whose parent link points at id, in order.
func Children(tasks []Task, id uuid.UUID) []Task {
	var out []Task
	for _, t := range tasks {
		if t.ParentTask != nil && *t.ParentTask == id {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the position of the first task with the given id, or -1.
func Find(tasks []Task, id uuid.UUID) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}

func without(values []string, v string) []string {
	out := values[:0:0]
	for _, existing := range values {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
