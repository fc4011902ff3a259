package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/models"
)

// Describe returns a one-line human summary of e, used by history listings.
func Describe(e Event) string {
	switch e := e.(type) {
	case SetName:
		return fmt.Sprintf("rename to %q", e.Name)
	case MarkComplete:
		return "mark complete"
	case MarkIncomplete:
		return "mark incomplete"
	case SetStartDate:
		return "set start " + formatTime(e.StartDate)
	case SetDueDate:
		return "set due " + formatTime(e.Due)
	case AddContext:
		return fmt.Sprintf("add context %q", e.Context)
	case RemoveContext:
		return fmt.Sprintf("remove context %q", e.Context)
	case AddProject:
		return fmt.Sprintf("add project %q", e.Project)
	case RemoveProject:
		return fmt.Sprintf("remove project %q", e.Project)
	case AddArea:
		return fmt.Sprintf("add area %q", e.Area)
	case RemoveArea:
		return fmt.Sprintf("remove area %q", e.Area)
	case SetMoneyNeeded:
		if e.Needed {
			return "needs money"
		}
		return "needs no money"
	case SetWeather:
		if e.Weather == nil {
			return "clear weather"
		}
		return "set weather " + string(*e.Weather)
	case SetTimeOfDay:
		if e.TimeOfDay == nil {
			return "clear time of day"
		}
		return "set time of day " + e.TimeOfDay.String()
	case SetParentTask:
		if e.Parent == nil {
			return "clear parent"
		}
		return "set parent " + ShortID(*e.Parent)
	case AddTask:
		return fmt.Sprintf("add %q", e.Task.Name)
	case RemoveTask:
		return "remove"
	case nil:
		return "none"
	}
	return string(e.Kind())
}

// ShortID returns the first eight characters of id.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(time.RFC3339)
}

// Names maps every task seen while replaying evs over base to its latest
// name, including tasks that a later event removes.
func Names(base []models.Task, evs []Event) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	note := func(tasks []models.Task) {
		for _, t := range tasks {
			names[t.ID] = t.Name
		}
	}
	tasks := base
	note(tasks)
	for _, e := range evs {
		tasks = Apply(tasks, e)
		note(tasks)
	}
	return names
}
