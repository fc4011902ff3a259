package models

import (
	"fmt"
	"strings"
	"time"
)

// CompletionStatus is either incomplete or completed, optionally with the
// time of completion.
type CompletionStatus struct {
	Done        bool       `yaml:"done"`
	CompletedAt *time.Time `yaml:"completed_at,omitempty"` // Only when done
}

// Incomplete returns the incomplete status.
func Incomplete() CompletionStatus {
	return CompletionStatus{}
}

// Completed returns the completed status. at may be nil when the completion
// time is unknown.
func Completed(at *time.Time) CompletionStatus {
	return CompletionStatus{Done: true, CompletedAt: cloneTime(at)}
}

func (c CompletionStatus) clone() CompletionStatus {
	c.CompletedAt = cloneTime(c.CompletedAt)
	return c
}

func (c CompletionStatus) String() string {
	if !c.Done {
		return "incomplete"
	}
	if c.CompletedAt == nil {
		return "completed"
	}
	return "completed " + c.CompletedAt.Format(time.RFC3339)
}

// Period is a coarse time-of-day slot.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodMidday    Period = "midday"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodSpecific  Period = "specific"
)

// TimeOfDay tags when in the day a task fits. At is only set for
// PeriodSpecific.
type TimeOfDay struct {
	Period Period     `yaml:"period"`
	At     *time.Time `yaml:"at,omitempty"`
}

// Specific returns a time of day pinned to at.
func Specific(at time.Time) TimeOfDay {
	at = at.UTC()
	return TimeOfDay{Period: PeriodSpecific, At: &at}
}

func (t TimeOfDay) clone() TimeOfDay {
	t.At = cloneTime(t.At)
	return t
}

func (t TimeOfDay) String() string {
	if t.Period == PeriodSpecific && t.At != nil {
		return t.At.Format(time.RFC3339)
	}
	return string(t.Period)
}

// ParseTimeOfDay parses a period name or an RFC3339 timestamp.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch Period(s) {
	case PeriodMorning, PeriodMidday, PeriodAfternoon, PeriodEvening:
		return TimeOfDay{Period: Period(s)}, nil
	}
	at, err := time.Parse(time.RFC3339, strings.ToUpper(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected morning, midday, afternoon, evening or an RFC3339 time", s)
	}
	return Specific(at), nil
}

// Weather tags the weather a task needs.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherWindy  Weather = "windy"
)

// Weathers lists every weather tag.
var Weathers = []Weather{WeatherSunny, WeatherCloudy, WeatherRainy, WeatherWindy}

// ParseWeather parses a weather tag by name.
func ParseWeather(s string) (Weather, error) {
	w := Weather(strings.TrimSpace(strings.ToLower(s)))
	for _, known := range Weathers {
		if w == known {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid weather %q: expected sunny, cloudy, rainy or windy", s)
}
