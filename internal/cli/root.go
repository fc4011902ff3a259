// Package cli implements the taskfold CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/config"
)

// dataDir overrides the data directory (default ~/.taskfold).
var dataDir string

var rootCmd = &cobra.Command{
	Use:   "taskfold",
	Short: "Edit a task list with unlimited undo",
	Long: `Taskfold keeps a task list as a snapshot plus a journal of edits.
Every edit can be undone and redone until it is committed into the snapshot.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "data directory (default ~/.taskfold)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(redoCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveDataDir returns the data directory, creating it if needed.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if err := config.EnsureGlobalDir(); err != nil {
		return "", err
	}
	return config.GlobalDir()
}
