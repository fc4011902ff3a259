package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/models"
)

// SetName renames a task.
type SetName struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
	Name  string    `yaml:"name"`
}

func (e SetName) Kind() Kind                 { return KindSetName }
func (e SetName) TaskID() uuid.UUID          { return e.ID }
func (e SetName) stamped(at time.Time) Event { e.At = at; return e }
func (e SetName) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetName(e.Name) })
}

// MarkComplete completes a task.
type MarkComplete struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
}

func (e MarkComplete) Kind() Kind                 { return KindMarkComplete }
func (e MarkComplete) TaskID() uuid.UUID          { return e.ID }
func (e MarkComplete) stamped(at time.Time) Event { e.At = at; return e }
func (e MarkComplete) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task {
		if e.At.IsZero() {
			return t.MarkComplete()
		}
		return t.MarkCompleteAt(e.At)
	})
}

// MarkIncomplete reopens a task.
type MarkIncomplete struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
}

func (e MarkIncomplete) Kind() Kind                 { return KindMarkIncomplete }
func (e MarkIncomplete) TaskID() uuid.UUID          { return e.ID }
func (e MarkIncomplete) stamped(at time.Time) Event { e.At = at; return e }
func (e MarkIncomplete) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, models.Task.MarkIncomplete)
}

// SetStartDate sets or clears (nil) a task's start date.
type SetStartDate struct {
	Stamp     `yaml:",inline"`
	ID        uuid.UUID  `yaml:"id"`
	StartDate *time.Time `yaml:"start_date,omitempty"`
}

func (e SetStartDate) Kind() Kind                 { return KindSetStartDate }
func (e SetStartDate) TaskID() uuid.UUID          { return e.ID }
func (e SetStartDate) stamped(at time.Time) Event { e.At = at; return e }
func (e SetStartDate) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetStartDate(e.StartDate) })
}

// SetDueDate sets or clears (nil) a task's due date.
type SetDueDate struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID  `yaml:"id"`
	Due   *time.Time `yaml:"due,omitempty"`
}

func (e SetDueDate) Kind() Kind                 { return KindSetDueDate }
func (e SetDueDate) TaskID() uuid.UUID          { return e.ID }
func (e SetDueDate) stamped(at time.Time) Event { e.At = at; return e }
func (e SetDueDate) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetDueDate(e.Due) })
}

// AddContext appends a context to a task.
type AddContext struct {
	Stamp   `yaml:",inline"`
	ID      uuid.UUID `yaml:"id"`
	Context string    `yaml:"context"`
}

func (e AddContext) Kind() Kind                 { return KindAddContext }
func (e AddContext) TaskID() uuid.UUID          { return e.ID }
func (e AddContext) stamped(at time.Time) Event { e.At = at; return e }
func (e AddContext) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.AddContext(e.Context) })
}

// RemoveContext removes every matching context from a task.
type RemoveContext struct {
	Stamp   `yaml:",inline"`
	ID      uuid.UUID `yaml:"id"`
	Context string    `yaml:"context"`
}

func (e RemoveContext) Kind() Kind                 { return KindRemoveContext }
func (e RemoveContext) TaskID() uuid.UUID          { return e.ID }
func (e RemoveContext) stamped(at time.Time) Event { e.At = at; return e }
func (e RemoveContext) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.RemoveContext(e.Context) })
}

// AddProject appends a project to a task.
type AddProject struct {
	Stamp   `yaml:",inline"`
	ID      uuid.UUID `yaml:"id"`
	Project string    `yaml:"project"`
}

func (e AddProject) Kind() Kind                 { return KindAddProject }
func (e AddProject) TaskID() uuid.UUID          { return e.ID }
func (e AddProject) stamped(at time.Time) Event { e.At = at; return e }
func (e AddProject) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.AddProject(e.Project) })
}

// RemoveProject removes every matching project from a task.
type RemoveProject struct {
	Stamp   `yaml:",inline"`
	ID      uuid.UUID `yaml:"id"`
	Project string    `yaml:"project"`
}

func (e RemoveProject) Kind() Kind                 { return KindRemoveProject }
func (e RemoveProject) TaskID() uuid.UUID          { return e.ID }
func (e RemoveProject) stamped(at time.Time) Event { e.At = at; return e }
func (e RemoveProject) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.RemoveProject(e.Project) })
}

// AddArea appends an area to a task.
type AddArea struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
	Area  string    `yaml:"area"`
}

func (e AddArea) Kind() Kind                 { return KindAddArea }
func (e AddArea) TaskID() uuid.UUID          { return e.ID }
func (e AddArea) stamped(at time.Time) Event { e.At = at; return e }
func (e AddArea) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.AddArea(e.Area) })
}

// RemoveArea removes every matching area from a task.
type RemoveArea struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
	Area  string    `yaml:"area"`
}

func (e RemoveArea) Kind() Kind                 { return KindRemoveArea }
func (e RemoveArea) TaskID() uuid.UUID          { return e.ID }
func (e RemoveArea) stamped(at time.Time) Event { e.At = at; return e }
func (e RemoveArea) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.RemoveArea(e.Area) })
}

// SetMoneyNeeded sets whether a task costs money.
type SetMoneyNeeded struct {
	Stamp  `yaml:",inline"`
	ID     uuid.UUID `yaml:"id"`
	Needed bool      `yaml:"needed"`
}

func (e SetMoneyNeeded) Kind() Kind                 { return KindSetMoneyNeeded }
func (e SetMoneyNeeded) TaskID() uuid.UUID          { return e.ID }
func (e SetMoneyNeeded) stamped(at time.Time) Event { e.At = at; return e }
func (e SetMoneyNeeded) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetMoneyNeeded(e.Needed) })
}

// SetWeather sets or clears (nil) a task's weather tag.
type SetWeather struct {
	Stamp   `yaml:",inline"`
	ID      uuid.UUID       `yaml:"id"`
	Weather *models.Weather `yaml:"weather,omitempty"`
}

func (e SetWeather) Kind() Kind                 { return KindSetWeather }
func (e SetWeather) TaskID() uuid.UUID          { return e.ID }
func (e SetWeather) stamped(at time.Time) Event { e.At = at; return e }
func (e SetWeather) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetWeather(e.Weather) })
}

// SetTimeOfDay sets or clears (nil) a task's time of day.
type SetTimeOfDay struct {
	Stamp     `yaml:",inline"`
	ID        uuid.UUID         `yaml:"id"`
	TimeOfDay *models.TimeOfDay `yaml:"time_of_day,omitempty"`
}

func (e SetTimeOfDay) Kind() Kind                 { return KindSetTimeOfDay }
func (e SetTimeOfDay) TaskID() uuid.UUID          { return e.ID }
func (e SetTimeOfDay) stamped(at time.Time) Event { e.At = at; return e }
func (e SetTimeOfDay) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetTimeOfDay(e.TimeOfDay) })
}

// SetParentTask links a task to a parent, or unlinks it (nil).
type SetParentTask struct {
	Stamp  `yaml:",inline"`
	ID     uuid.UUID  `yaml:"id"`
	Parent *uuid.UUID `yaml:"parent,omitempty"`
}

func (e SetParentTask) Kind() Kind                 { return KindSetParentTask }
func (e SetParentTask) TaskID() uuid.UUID          { return e.ID }
func (e SetParentTask) stamped(at time.Time) Event { e.At = at; return e }
func (e SetParentTask) apply(tasks []models.Task) []models.Task {
	return edit(tasks, e.ID, e.At, func(t models.Task) models.Task { return t.SetParentTask(e.Parent) })
}

// AddTask appends a new task to the collection.
type AddTask struct {
	Stamp `yaml:",inline"`
	Task  models.Task `yaml:"task"`
}

func (e AddTask) Kind() Kind                 { return KindAddTask }
func (e AddTask) TaskID() uuid.UUID          { return e.Task.ID }
func (e AddTask) stamped(at time.Time) Event { e.At = at; return e }
func (e AddTask) apply(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, e.Task)
}

// RemoveTask removes every task with the given id.
type RemoveTask struct {
	Stamp `yaml:",inline"`
	ID    uuid.UUID `yaml:"id"`
}

func (e RemoveTask) Kind() Kind                 { return KindRemoveTask }
func (e RemoveTask) TaskID() uuid.UUID          { return e.ID }
func (e RemoveTask) stamped(at time.Time) Event { e.At = at; return e }
func (e RemoveTask) apply(tasks []models.Task) []models.Task {
	if models.Find(tasks, e.ID) < 0 {
		return tasks
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != e.ID {
			out = append(out, t)
		}
	}
	return out
}
