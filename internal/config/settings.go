package config

import (
	"fmt"
	"strconv"

	"github.com/taskfold/taskfold/internal/models"
)

// LoadSettings loads the global settings from ~/.taskfold/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.taskfold/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// SettingKeys lists the keys accepted by SetSetting.
var SettingKeys = []string{
	"calendar.url",
	"calendar.username",
	"display.show_completed",
	"display.date_layout",
	"display.theme",
	"history.auto_commit",
}

// SetSetting sets a single setting by its dotted YAML key.
func SetSetting(settings *models.Settings, key, value string) error {
	switch key {
	case "calendar.url":
		settings.Calendar.URL = value
	case "calendar.username":
		settings.Calendar.Username = value
	case "display.show_completed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		settings.Display.ShowCompleted = b
	case "display.date_layout":
		settings.Display.DateLayout = value
	case "display.theme":
		if value != "system" && value != "light" && value != "dark" {
			return fmt.Errorf("theme must be 'system', 'light', or 'dark'")
		}
		settings.Display.Theme = value
	case "history.auto_commit":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		settings.History.AutoCommit = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
