package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/events"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent edit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, "Undid", "Nothing to undo.", true)
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the most recently undone edit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return step(cmd, "Redid", "Nothing to redo.", false)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the edit history since the last commit",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Fold the edit history into the snapshot",
	Long: `Commit replaces the snapshot with the present state and empties the
edit history. Committed edits can no longer be undone. The previous snapshot
is kept in the backups directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, dir, err := openSession()
		if err != nil {
			return err
		}
		n := len(s.Applied())
		if err := s.Commit(dir); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %d edit(s) into the snapshot.\n", styleSuccess.Render("Committed"), n)
		if backups, err := config.ListBackups(dir); err == nil && len(backups) > 0 {
			fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Previous snapshot:"), backups[len(backups)-1])
		}
		return nil
	},
}

// step undoes or redoes one event and saves the journal.
func step(cmd *cobra.Command, verb, empty string, back bool) error {
	s, dir, err := openSession()
	if err != nil {
		return err
	}

	move := s.Redo
	if back {
		move = s.Undo
	}
	e, ok := move()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), styleHint.Render(empty))
		return nil
	}
	if err := s.Save(dir); err != nil {
		return err
	}
	names := events.Names(s.Base(), append(s.Applied(), s.Undone()...))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render(verb), describeFor(e, names))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, _, err := openSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	applied, undone := s.Applied(), s.Undone()
	if len(applied) == 0 && len(undone) == 0 {
		fmt.Fprintln(out, styleHint.Render("No edits since the last commit."))
		return nil
	}

	names := events.Names(s.Base(), append(applied, undone...))

	// Undone events print above the applied ones, furthest redo first, so the
	// list reads oldest at the bottom.
	for i := len(undone) - 1; i >= 0; i-- {
		fmt.Fprintf(out, "  %s %s\n", labelUndone, describeFor(undone[i], names))
	}
	for i := len(applied) - 1; i >= 0; i-- {
		fmt.Fprintf(out, "  %s %s\n", labelApplied, describeFor(applied[i], names))
	}
	return nil
}

// describeFor labels e with the name of its task.
func describeFor(e events.Event, names map[uuid.UUID]string) string {
	label := styleID.Render(events.ShortID(e.TaskID()))
	if name := names[e.TaskID()]; name != "" {
		label += " " + name
	}
	return fmt.Sprintf("%s %s: %s", styleLabel.Render(e.Time().Local().Format("2006-01-02 15:04")), label, events.Describe(e))
}
