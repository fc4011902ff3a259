// Package events defines the edit vocabulary for a task collection and the
// reducer that applies it.
//
// Present state is never stored. It is recomputed by replaying the applied
// events over a base snapshot, so undoing an edit means dropping it from the
// replay rather than inverting it.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/models"
)

// Kind names an event variant. Kinds are stable: they are written to the
// journal.
type Kind string

const (
	KindSetName        Kind = "set_name"
	KindMarkComplete   Kind = "mark_complete"
	KindMarkIncomplete Kind = "mark_incomplete"
	KindSetStartDate   Kind = "set_start_date"
	KindSetDueDate     Kind = "set_due_date"
	KindAddContext     Kind = "add_context"
	KindRemoveContext  Kind = "remove_context"
	KindAddProject     Kind = "add_project"
	KindRemoveProject  Kind = "remove_project"
	KindAddArea        Kind = "add_area"
	KindRemoveArea     Kind = "remove_area"
	KindSetMoneyNeeded Kind = "set_money_needed"
	KindSetWeather     Kind = "set_weather"
	KindSetTimeOfDay   Kind = "set_time_of_day"
	KindSetParentTask  Kind = "set_parent_task"
	KindAddTask        Kind = "add_task"
	KindRemoveTask     Kind = "remove_task"
)

// Kinds lists every event kind.
var Kinds = []Kind{
	KindSetName,
	KindMarkComplete,
	KindMarkIncomplete,
	KindSetStartDate,
	KindSetDueDate,
	KindAddContext,
	KindRemoveContext,
	KindAddProject,
	KindRemoveProject,
	KindAddArea,
	KindRemoveArea,
	KindSetMoneyNeeded,
	KindSetWeather,
	KindSetTimeOfDay,
	KindSetParentTask,
	KindAddTask,
	KindRemoveTask,
}

// Event is one requested edit to a task collection.
//
// The set of implementations is closed: apply is unexported, and every
// variant must provide it, so a new variant cannot exist without its
// reduction.
type Event interface {
	Kind() Kind
	// TaskID is the id of the task the event targets.
	TaskID() uuid.UUID
	// Time is when the edit was requested. Replays stamp modified tasks
	// with it, so the same log always folds to the same state.
	Time() time.Time
	stamped(at time.Time) Event
	apply(tasks []models.Task) []models.Task
}

// Stamp carries the time an event was requested.
type Stamp struct {
	At time.Time `yaml:"at,omitempty"`
}

// Time returns the stamp. It is zero for events that were never stamped.
func (s Stamp) Time() time.Time { return s.At }

// Stamped returns a copy of e carrying at as its request time.
func Stamped(e Event, at time.Time) Event {
	return e.stamped(at.UTC())
}

// Apply returns the task collection that results from applying e to tasks.
// tasks is not modified. A single-task edit whose target is absent leaves
// the collection unchanged.
func Apply(tasks []models.Task, e Event) []models.Task {
	if e == nil {
		return tasks
	}
	return e.apply(tasks)
}

// Replay folds evs over base in order and returns the resulting collection.
func Replay(base []models.Task, evs []Event) []models.Task {
	tasks := base
	for _, e := range evs {
		tasks = Apply(tasks, e)
	}
	return tasks
}

// edit replaces the task with the given id by fn's result, keeping its
// position. A non-zero at overrides the mutator's modification time. The
// returned slice never aliases tasks.
func edit(tasks []models.Task, id uuid.UUID, at time.Time, fn func(models.Task) models.Task) []models.Task {
	i := models.Find(tasks, id)
	if i < 0 {
		return tasks
	}
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	out[i] = fn(tasks[i])
	if !at.IsZero() {
		out[i].LastModified = at
	}
	return out
}
