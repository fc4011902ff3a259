package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or change global settings",
	Args:    cobra.NoArgs,
	RunE:    runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show global settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a global setting",
	Long:  "Change a global setting. Keys:\n  " + strings.Join(config.SettingKeys, "\n  "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if err := config.SetSetting(settings, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", styleSuccess.Render("Set"), args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleHint.Render(path))
	rows := []struct{ key, value string }{
		{"calendar.url", settings.Calendar.URL},
		{"calendar.username", settings.Calendar.Username},
		{"display.show_completed", fmt.Sprintf("%t", settings.Display.ShowCompleted)},
		{"display.date_layout", settings.Display.DateLayout},
		{"display.theme", settings.Display.Theme},
		{"history.auto_commit", fmt.Sprintf("%t", settings.History.AutoCommit)},
	}
	for _, r := range rows {
		v := r.value
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-24s", r.key)), styleValue.Render(v))
	}
	return nil
}
