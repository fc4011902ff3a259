package events

import (
	"testing"

	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/models"
)

func TestDescribe(t *testing.T) {
	id := uuid.MustParse("0d5b7e9c-1111-4222-8333-444455556666")
	rainy := models.WeatherRainy

	tests := []struct {
		event Event
		want  string
	}{
		{SetName{ID: id, Name: "Call mum"}, `rename to "Call mum"`},
		{MarkComplete{ID: id}, "mark complete"},
		{SetDueDate{ID: id}, "set due none"},
		{RemoveArea{ID: id, Area: "Home"}, `remove area "Home"`},
		{SetWeather{ID: id, Weather: &rainy}, "set weather rainy"},
		{SetParentTask{ID: id, Parent: &id}, "set parent 0d5b7e9c"},
		{SetParentTask{ID: id}, "clear parent"},
		{SetMoneyNeeded{ID: id, Needed: true}, "needs money"},
		{RemoveTask{ID: id}, "remove"},
		{nil, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Describe(tt.event); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamesIncludesRemovedTasks(t *testing.T) {
	a := models.NewTask("A")
	b := models.NewTask("B")
	evs := []Event{
		AddTask{Task: b},
		SetName{ID: a.ID, Name: "A2"},
		RemoveTask{ID: b.ID},
	}

	names := Names([]models.Task{a}, evs)
	if names[a.ID] != "A2" {
		t.Errorf("names[a] = %q, want A2", names[a.ID])
	}
	if names[b.ID] != "B" {
		t.Errorf("names[b] = %q, want B", names[b.ID])
	}
}
