package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
	"github.com/taskfold/taskfold/internal/session"
)

var (
	addContexts []string
	addAreas    []string
	addProjects []string
	addDue      string
	addStart    string
	addParent   string

	listAll     bool
	listContext string
	listProject string
	listArea    string
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var doneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.MarkComplete{ID: t.ID}
		})
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone ID",
	Short: "Mark a task incomplete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTask(cmd, args[0], func(t models.Task) events.Event {
			return events.MarkIncomplete{ID: t.ID}
		})
	},
}

func init() {
	addCmd.Flags().StringArrayVar(&addContexts, "context", nil, "context tag (repeatable)")
	addCmd.Flags().StringArrayVar(&addAreas, "area", nil, "area tag (repeatable)")
	addCmd.Flags().StringArrayVar(&addProjects, "project", nil, "project tag (repeatable)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due time")
	addCmd.Flags().StringVar(&addStart, "start", "", "start time")
	addCmd.Flags().StringVar(&addParent, "parent", "", "parent task id")

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include completed tasks")
	listCmd.Flags().StringVar(&listContext, "context", "", "only tasks with this context")
	listCmd.Flags().StringVar(&listProject, "project", "", "only tasks with this project")
	listCmd.Flags().StringVar(&listArea, "area", "", "only tasks with this area")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("name is required")
	}

	t := models.NewTask(name)
	for _, c := range addContexts {
		t = t.AddContext(c)
	}
	for _, a := range addAreas {
		t = t.AddArea(a)
	}
	for _, p := range addProjects {
		t = t.AddProject(p)
	}
	due, err := parseTime(addDue)
	if err != nil {
		return err
	}
	if due != nil {
		t = t.SetDueDate(due)
	}
	start, err := parseTime(addStart)
	if err != nil {
		return err
	}
	if start != nil {
		t = t.SetStartDate(start)
	}
	if addParent != "" {
		s, _, err := openSession()
		if err != nil {
			return err
		}
		parent, err := s.Resolve(addParent)
		if err != nil {
			return err
		}
		t = t.SetParentTask(&parent.ID)
	}

	if _, err := record(events.AddTask{Task: t}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", styleSuccess.Render("Added"), styleID.Render(events.ShortID(t.ID)), t.Name)
	return nil
}

// listFilter selects tasks for listing.
type listFilter struct {
	All     bool
	Context string
	Project string
	Area    string
}

func (f listFilter) match(t models.Task) bool {
	if !f.All && t.IsComplete() {
		return false
	}
	if f.Context != "" && !t.HasContext(f.Context) {
		return false
	}
	if f.Project != "" && !t.HasProject(f.Project) {
		return false
	}
	if f.Area != "" && !t.HasArea(f.Area) {
		return false
	}
	return true
}

func filterTasks(tasks []models.Task, f listFilter) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

func runList(cmd *cobra.Command, args []string) error {
	s, _, err := openSession()
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	tasks := filterTasks(s.PresentState(), listFilter{
		All:     listAll || settings.Display.ShowCompleted,
		Context: listContext,
		Project: listProject,
		Area:    listArea,
	})

	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, styleHint.Render("No tasks. Run 'taskfold add' to create one."))
		return nil
	}

	width := terminalWidth(out)
	ts := time.Now()
	for _, t := range tasks {
		row := formatRow(t, settings.Display.DateLayout, ts)
		if width > 0 {
			row = ansi.Truncate(row, width, "…")
		}
		fmt.Fprintln(out, row)
	}
	return nil
}

// terminalWidth returns the width of w if it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// formatRow renders a task as a single list line.
func formatRow(t models.Task, layout string, now time.Time) string {
	badge := badgeOpen.Render("[ ]")
	if t.IsComplete() {
		badge = badgeDone.Render("[x]")
	}

	var b strings.Builder
	b.WriteString(badge)
	b.WriteString(" ")
	b.WriteString(styleID.Render(events.ShortID(t.ID)))
	b.WriteString("  ")
	b.WriteString(t.Name)
	if tags := formatTags(t); tags != "" {
		b.WriteString("  ")
		b.WriteString(styleTag.Render(tags))
	}
	if t.Due != nil {
		due := "due " + t.Due.In(time.Local).Format(layout)
		if !t.IsComplete() && t.Due.Before(now) {
			due = styleOverdue.Render(due)
		} else {
			due = styleHint.Render(due)
		}
		b.WriteString("  ")
		b.WriteString(due)
	}
	return b.String()
}

// formatTags renders tags as @context +project #area.
func formatTags(t models.Task) string {
	var parts []string
	for _, c := range t.Contexts {
		parts = append(parts, "@"+c)
	}
	for _, p := range t.Projects {
		parts = append(parts, "+"+p)
	}
	for _, a := range t.Areas {
		parts = append(parts, "#"+a)
	}
	return strings.Join(parts, " ")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, _, err := openSession()
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	present := s.PresentState()
	t, err := session.Resolve(present, args[0])
	if err != nil {
		return err
	}

	layout := settings.Display.DateLayout
	fmtTime := func(ts *time.Time) string {
		if ts == nil {
			return "-"
		}
		return ts.In(time.Local).Format(layout)
	}

	out := cmd.OutOrStdout()
	field := func(label, value string) {
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-14s", label+":")), styleValue.Render(value))
	}

	field("ID", t.ID.String())
	field("Name", t.Name)
	field("Status", t.Completed.String())
	field("Start", fmtTime(t.StartDate))
	field("Due", fmtTime(t.Due))
	field("Contexts", joinOrDash(t.Contexts))
	field("Areas", joinOrDash(t.Areas))
	field("Projects", joinOrDash(t.Projects))
	field("Money needed", fmt.Sprintf("%t", t.MoneyNeeded))
	if t.TimeOfDay != nil {
		field("Time of day", t.TimeOfDay.String())
	} else {
		field("Time of day", "-")
	}
	if t.Weather != nil {
		field("Weather", string(*t.Weather))
	} else {
		field("Weather", "-")
	}
	if t.ParentTask != nil {
		parent := events.ShortID(*t.ParentTask)
		if i := models.Find(present, *t.ParentTask); i >= 0 {
			parent += " " + present[i].Name
		} else {
			parent += " (missing)"
		}
		field("Parent", parent)
	} else {
		field("Parent", "-")
	}
	if children := models.Children(present, t.ID); len(children) > 0 {
		var names []string
		for _, c := range children {
			names = append(names, events.ShortID(c.ID)+" "+c.Name)
		}
		field("Children", strings.Join(names, ", "))
	}
	field("Created", fmtTime(&t.CreationDate))
	field("Modified", fmtTime(&t.LastModified))
	return nil
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func runRemove(cmd *cobra.Command, args []string) error {
	return editTask(cmd, args[0], func(t models.Task) events.Event {
		return events.RemoveTask{ID: t.ID}
	})
}

// editTask resolves ref and records the event built for the task.
func editTask(cmd *cobra.Command, ref string, build func(models.Task) events.Event) error {
	s, _, err := openSession()
	if err != nil {
		return err
	}
	t, err := s.Resolve(ref)
	if err != nil {
		return err
	}
	e := build(t)
	if _, err := record(e); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", styleID.Render(events.ShortID(t.ID)), t.Name, events.Describe(e))
	return nil
}
