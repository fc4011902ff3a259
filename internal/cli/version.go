package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/taskfold/taskfold/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s %s\n", styleBrand.Render("Taskfold"), styleVersion.Render(buildinfo.Short()), styleHint.Render(buildinfo.Codename))
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Commit:"), buildinfo.CommitHash)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Built:"), buildinfo.BuildDate)
		fmt.Fprintf(out, "  %s %s/%s\n", styleLabel.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("Go:"), runtime.Version())
	},
}
