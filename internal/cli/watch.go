package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/session"
	"github.com/taskfold/taskfold/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print a summary whenever the task list changes on disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		w, err := watcher.New(dir)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		defer w.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", styleBrand.Render("Watching"), dir)
		return watchLoop(ctx, w.Events(), func(e watcher.Event) {
			s, err := session.Load(dir)
			if err != nil {
				fmt.Fprintf(out, "%s %v\n", styleWarning.Render("Warning:"), err)
				return
			}
			fmt.Fprintln(out, summarize(e, s, time.Now()))
		})
	},
}

func watchLoop(ctx context.Context, evs <-chan watcher.Event, fn func(watcher.Event)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-evs:
			if !ok {
				return nil
			}
			fn(e)
		}
	}
}

// summarize renders one line describing the state after a change.
func summarize(e watcher.Event, s *session.Session, now time.Time) string {
	present := s.PresentState()
	open := 0
	for _, t := range present {
		if !t.IsComplete() {
			open++
		}
	}
	return fmt.Sprintf("%s %-8s %d task(s), %d open, %d edit(s), %d undone",
		styleLabel.Render(now.Format("15:04:05")), e.Type, len(present), open, len(s.Applied()), len(s.Undone()))
}
