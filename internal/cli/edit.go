package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a task field",
}

var editNameCmd = &cobra.Command{
	Use:   "name ID NAME",
	Short: "Rename a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args[1:], " "))
		if name == "" {
			return fmt.Errorf("name is required")
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetName{ID: t.ID, Name: name}
		})
	},
}

var editStartCmd = &cobra.Command{
	Use:   "start ID [TIME|none]",
	Short: "Set or clear the start time",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseTime(optionalArg(args, 1))
		if err != nil {
			return err
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetStartDate{ID: t.ID, StartDate: ts}
		})
	},
}

var editDueCmd = &cobra.Command{
	Use:   "due ID [TIME|none]",
	Short: "Set or clear the due time",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := parseTime(optionalArg(args, 1))
		if err != nil {
			return err
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetDueDate{ID: t.ID, Due: ts}
		})
	},
}

var editMoneyCmd = &cobra.Command{
	Use:   "money ID true|false",
	Short: "Set whether a task needs money",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		needed, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: expected true or false", args[1])
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetMoneyNeeded{ID: t.ID, Needed: needed}
		})
	},
}

var editWeatherCmd = &cobra.Command{
	Use:   "weather ID sunny|cloudy|rainy|windy|none",
	Short: "Set or clear the weather a task needs",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var w *models.Weather
		if !strings.EqualFold(args[1], "none") {
			parsed, err := models.ParseWeather(args[1])
			if err != nil {
				return err
			}
			w = &parsed
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetWeather{ID: t.ID, Weather: w}
		})
	},
}

var editTimeCmd = &cobra.Command{
	Use:   "time ID morning|midday|afternoon|evening|none|TIME",
	Short: "Set or clear the time of day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tod *models.TimeOfDay
		if !strings.EqualFold(args[1], "none") {
			parsed, err := models.ParseTimeOfDay(args[1])
			if err != nil {
				return err
			}
			tod = &parsed
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.SetTimeOfDay{ID: t.ID, TimeOfDay: tod}
		})
	},
}

var editParentCmd = &cobra.Command{
	Use:   "parent ID PARENT|none",
	Short: "Set or clear the parent task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openSession()
		if err != nil {
			return err
		}
		var parent *models.Task
		if !strings.EqualFold(args[1], "none") {
			p, err := s.Resolve(args[1])
			if err != nil {
				return err
			}
			parent = &p
		}
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			if parent == nil {
				return events.SetParentTask{ID: t.ID}
			}
			return events.SetParentTask{ID: t.ID, Parent: &parent.ID}
		})
	},
}

// tagCommand builds the add/rm pair for one tag kind.
func tagCommand(kind string, add, remove func(models.Task, string) events.Event) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: "Add or remove a " + kind,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add ID VALUE",
		Short: "Add a " + kind,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return editTask(c, args[0], func(t models.Task) events.Event { return add(t, args[1]) })
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "rm ID VALUE",
		Aliases: []string{"remove"},
		Short:   "Remove a " + kind,
		Args:    cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return editTask(c, args[0], func(t models.Task) events.Event { return remove(t, args[1]) })
		},
	})
	return cmd
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func init() {
	editCmd.AddCommand(tagCommand("area",
		func(t models.Task, v string) events.Event { return events.AddArea{ID: t.ID, Area: v} },
		func(t models.Task, v string) events.Event { return events.RemoveArea{ID: t.ID, Area: v} },
	))
	editCmd.AddCommand(tagCommand("context",
		func(t models.Task, v string) events.Event { return events.AddContext{ID: t.ID, Context: v} },
		func(t models.Task, v string) events.Event { return events.RemoveContext{ID: t.ID, Context: v} },
	))
	editCmd.AddCommand(editDueCmd)
	editCmd.AddCommand(editMoneyCmd)
	editCmd.AddCommand(editNameCmd)
	editCmd.AddCommand(editParentCmd)
	editCmd.AddCommand(tagCommand("project",
		func(t models.Task, v string) events.Event { return events.AddProject{ID: t.ID, Project: v} },
		func(t models.Task, v string) events.Event { return events.RemoveProject{ID: t.ID, Project: v} },
	))
	editCmd.AddCommand(editStartCmd)
	editCmd.AddCommand(editTimeCmd)
	editCmd.AddCommand(editWeatherCmd)
}
