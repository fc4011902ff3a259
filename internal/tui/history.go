package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
)

// HistoryView lists the edits since the last commit, newest first, with
// undone edits above the applied ones.
type HistoryView struct {
	viewport viewport.Model
	empty    bool
	width    int
}

// NewHistoryView creates a new history view.
func NewHistoryView() *HistoryView {
	return &HistoryView{viewport: viewport.New(80, 24), empty: true}
}

// SetHistory updates the listed events.
func (h *HistoryView) SetHistory(base []models.Task, applied, undone []events.Event) {
	h.empty = len(applied) == 0 && len(undone) == 0
	h.viewport.SetContent(renderHistory(base, applied, undone, h.width))
}

// SetSize updates dimensions.
func (h *HistoryView) SetSize(width, height int) {
	h.width = width
	h.viewport.Width = width
	h.viewport.Height = height
}

// ScrollUp scrolls the viewport up.
func (h *HistoryView) ScrollUp() {
	h.viewport.LineUp(1)
}

// ScrollDown scrolls the viewport down.
func (h *HistoryView) ScrollDown() {
	h.viewport.LineDown(1)
}

// View renders the history.
func (h *HistoryView) View() string {
	if h.empty {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No edits since the last commit.")
	}
	return h.viewport.View()
}

func renderHistory(base []models.Task, applied, undone []events.Event, width int) string {
	names := events.Names(base, append(applied, undone...))
	line := func(e events.Event, style lipgloss.Style) string {
		s := e.Time().Local().Format("01-02 15:04") + " " + names[e.TaskID()] + ": " + events.Describe(e)
		if width > 0 {
			s = ansi.Truncate(s, width, "…")
		}
		return style.Render(s)
	}

	var lines []string
	for i := len(undone) - 1; i >= 0; i-- {
		lines = append(lines, line(undone[i], historyUndoneStyle))
	}
	for i := len(applied) - 1; i >= 0; i-- {
		lines = append(lines, line(applied[i], historyAppliedStyle))
	}
	return strings.Join(lines, "\n")
}
