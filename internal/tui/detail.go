package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
)

// DetailView displays the selected task's fields in a read-only viewport.
type DetailView struct {
	viewport viewport.Model
	content  string
}

// NewDetailView creates a new detail view.
func NewDetailView() *DetailView {
	return &DetailView{viewport: viewport.New(80, 24)}
}

// SetTask shows t, resolving its parent and children in tasks.
func (d *DetailView) SetTask(t *models.Task, tasks []models.Task, layout string) {
	if t == nil {
		d.content = ""
	} else {
		d.content = renderDetail(*t, tasks, layout)
	}
	d.viewport.SetContent(d.content)
}

// SetSize updates dimensions.
func (d *DetailView) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// ScrollUp scrolls the viewport up.
func (d *DetailView) ScrollUp() {
	d.viewport.LineUp(1)
}

// ScrollDown scrolls the viewport down.
func (d *DetailView) ScrollDown() {
	d.viewport.LineDown(1)
}

// View renders the details.
func (d *DetailView) View() string {
	if d.content == "" {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No task selected.")
	}
	return d.viewport.View()
}

func renderDetail(t models.Task, tasks []models.Task, layout string) string {
	fmtTime := func(ts *time.Time) string {
		if ts == nil {
			return "-"
		}
		return ts.Local().Format(layout)
	}
	orDash := func(values []string) string {
		if len(values) == 0 {
			return "-"
		}
		return strings.Join(values, ", ")
	}

	var lines []string
	field := func(label, value string) {
		lines = append(lines, detailLabelStyle.Render(label)+detailValueStyle.Render(value))
	}

	lines = append(lines, sectionHeaderStyle.Render(t.Name), "")
	field("ID", t.ID.String())
	field("Status", t.Completed.String())
	field("Start", fmtTime(t.StartDate))
	field("Due", fmtTime(t.Due))
	field("Contexts", orDash(t.Contexts))
	field("Areas", orDash(t.Areas))
	field("Projects", orDash(t.Projects))
	field("Money needed", fmt.Sprintf("%t", t.MoneyNeeded))

	tod := "-"
	if t.TimeOfDay != nil {
		tod = t.TimeOfDay.String()
	}
	field("Time of day", tod)

	weather := "-"
	if t.Weather != nil {
		weather = string(*t.Weather)
	}
	field("Weather", weather)

	parent := "-"
	if t.ParentTask != nil {
		parent = events.ShortID(*t.ParentTask)
		if i := models.Find(tasks, *t.ParentTask); i >= 0 {
			parent += " " + tasks[i].Name
		} else {
			parent += " (missing)"
		}
	}
	field("Parent", parent)

	if children := models.Children(tasks, t.ID); len(children) > 0 {
		lines = append(lines, "", sectionHeaderStyle.Render(fmt.Sprintf("Subtasks (%d)", len(children))))
		for _, c := range children {
			badge := "[ ]"
			if c.IsComplete() {
				badge = "[✓]"
			}
			lines = append(lines, "  "+badge+" "+c.Name)
		}
	}

	lines = append(lines, "")
	field("Created", fmtTime(&t.CreationDate))
	field("Modified", fmtTime(&t.LastModified))
	return strings.Join(lines, "\n")
}
