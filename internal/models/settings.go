package models

// CalendarConfig identifies the remote calendar the snapshot is synced with.
// The sync itself happens outside taskfold.
type CalendarConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
}

// DisplayConfig holds list and TUI display settings.
type DisplayConfig struct {
	ShowCompleted bool   `yaml:"show_completed"`
	DateLayout    string `yaml:"date_layout"` // Go time layout
	Theme         string `yaml:"theme"`       // "system" | "light" | "dark"
}

// HistoryConfig holds undo history settings.
type HistoryConfig struct {
	AutoCommit bool `yaml:"auto_commit"` // Fold the journal into the snapshot after every edit
}

// Settings represents global application settings.
// This corresponds to ~/.taskfold/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Calendar CalendarConfig `yaml:"calendar"`
	Display  DisplayConfig  `yaml:"display"`
	History  HistoryConfig  `yaml:"history"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Display: DisplayConfig{
			ShowCompleted: false,
			DateLayout:    "2006-01-02 15:04",
			Theme:         "system",
		},
		History: HistoryConfig{
			AutoCommit: false,
		},
	}
}
