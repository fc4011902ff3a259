package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/models"
)

// TaskList is the task list component for the left panel.
type TaskList struct {
	tasks        []models.Task
	flatItems    []taskItem // Flattened list for cursor navigation
	cursor       int
	scrollOffset int
	height       int
	showDone     bool
	dateLayout   string
	now          func() time.Time
}

type taskItem struct {
	task      models.Task
	depth     int
	isHeader  bool
	headerStr string
}

// NewTaskList creates a new task list.
func NewTaskList() *TaskList {
	return &TaskList{
		dateLayout: "2006-01-02",
		now:        time.Now,
	}
}

// SetTasks updates the task list data and rebuilds the flat item list. The
// cursor stays on the selected task when it is still listed.
func (tl *TaskList) SetTasks(tasks []models.Task) {
	var selected uuid.UUID
	if t, ok := tl.SelectedTask(); ok {
		selected = t.ID
	}

	tl.tasks = tasks
	tl.rebuild()

	if selected != uuid.Nil {
		tl.Select(selected)
	}
	tl.clampCursor()
}

// SetShowDone sets whether completed tasks are listed.
func (tl *TaskList) SetShowDone(show bool) {
	tl.showDone = show
	tl.SetTasks(tl.tasks)
}

// ShowDone reports whether completed tasks are listed.
func (tl *TaskList) ShowDone() bool {
	return tl.showDone
}

// SetDateLayout sets the layout used for due dates.
func (tl *TaskList) SetDateLayout(layout string) {
	if layout != "" {
		tl.dateLayout = layout
	}
}

// SetHeight sets the visible height.
func (tl *TaskList) SetHeight(h int) {
	tl.height = h
	tl.ensureVisible()
}

// SelectedTask returns the currently selected task.
func (tl *TaskList) SelectedTask() (models.Task, bool) {
	if tl.cursor < 0 || tl.cursor >= len(tl.flatItems) {
		return models.Task{}, false
	}
	item := tl.flatItems[tl.cursor]
	if item.isHeader {
		return models.Task{}, false
	}
	return item.task, true
}

// Select moves the cursor to the task with the given id, if listed.
func (tl *TaskList) Select(id uuid.UUID) bool {
	for i, item := range tl.flatItems {
		if !item.isHeader && item.task.ID == id {
			tl.cursor = i
			tl.ensureVisible()
			return true
		}
	}
	return false
}

// MoveUp moves the cursor up, skipping headers.
func (tl *TaskList) MoveUp() {
	if len(tl.flatItems) == 0 {
		return
	}
	tl.cursor--
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.skipHeaders(-1)
	tl.ensureVisible()
}

// MoveDown moves the cursor down, skipping headers.
func (tl *TaskList) MoveDown() {
	if len(tl.flatItems) == 0 {
		return
	}
	tl.cursor++
	if tl.cursor >= len(tl.flatItems) {
		tl.cursor = len(tl.flatItems) - 1
	}
	tl.skipHeaders(1)
	tl.ensureVisible()
}

func (tl *TaskList) clampCursor() {
	if tl.cursor >= len(tl.flatItems) {
		tl.cursor = len(tl.flatItems) - 1
	}
	if tl.cursor < 0 {
		tl.cursor = 0
	}
	tl.skipHeaders(1)
	tl.ensureVisible()
}

func (tl *TaskList) skipHeaders(direction int) {
	for tl.cursor >= 0 && tl.cursor < len(tl.flatItems) && tl.flatItems[tl.cursor].isHeader {
		tl.cursor += direction
	}
	if tl.cursor < 0 {
		tl.cursor = 0
		for tl.cursor < len(tl.flatItems) && tl.flatItems[tl.cursor].isHeader {
			tl.cursor++
		}
	}
	if tl.cursor >= len(tl.flatItems) {
		tl.cursor = len(tl.flatItems) - 1
		for tl.cursor >= 0 && tl.flatItems[tl.cursor].isHeader {
			tl.cursor--
		}
	}
}

func (tl *TaskList) ensureVisible() {
	if tl.height <= 0 {
		return
	}
	if tl.cursor < tl.scrollOffset {
		tl.scrollOffset = tl.cursor
	}
	if tl.cursor >= tl.scrollOffset+tl.height {
		tl.scrollOffset = tl.cursor - tl.height + 1
	}
	if tl.scrollOffset < 0 {
		tl.scrollOffset = 0
	}
}

func (tl *TaskList) rebuild() {
	var open, done []models.Task
	for _, t := range tl.tasks {
		if t.IsComplete() {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	sections := []struct {
		name  string
		tasks []models.Task
	}{
		{"Open", open},
	}
	if tl.showDone {
		sections = append(sections, struct {
			name  string
			tasks []models.Task
		}{"Done", done})
	}

	var items []taskItem
	for _, sec := range sections {
		if len(sec.tasks) == 0 {
			continue
		}
		items = append(items, taskItem{
			isHeader:  true,
			headerStr: fmt.Sprintf("%s (%d)", sec.name, len(sec.tasks)),
		})
		items = append(items, treeOrder(sec.tasks)...)
	}

	tl.flatItems = items
}

// treeOrder lists tasks with each child directly below its parent, indented
// by depth. A task whose parent is not in tasks is a root. Order among
// siblings follows tasks.
func treeOrder(tasks []models.Task) []taskItem {
	present := make(map[uuid.UUID]bool, len(tasks))
	for _, t := range tasks {
		present[t.ID] = true
	}

	children := make(map[uuid.UUID][]models.Task)
	var roots []models.Task
	for _, t := range tasks {
		if t.ParentTask != nil && present[*t.ParentTask] && *t.ParentTask != t.ID {
			children[*t.ParentTask] = append(children[*t.ParentTask], t)
			continue
		}
		roots = append(roots, t)
	}

	items := make([]taskItem, 0, len(tasks))
	visited := make(map[uuid.UUID]bool, len(tasks))
	var walk func(t models.Task, depth int)
	walk = func(t models.Task, depth int) {
		if visited[t.ID] {
			return
		}
		visited[t.ID] = true
		items = append(items, taskItem{task: t, depth: depth})
		for _, c := range children[t.ID] {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	// Tasks caught in a parent cycle have no root; list them flat.
	for _, t := range tasks {
		walk(t, 0)
	}
	return items
}

// View renders the task list.
func (tl *TaskList) View(width int) string {
	if len(tl.flatItems) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No tasks. Press 'a' to add one.")
	}

	var lines []string
	end := tl.scrollOffset + tl.height
	if tl.height <= 0 || end > len(tl.flatItems) {
		end = len(tl.flatItems)
	}

	for i := tl.scrollOffset; i < end; i++ {
		item := tl.flatItems[i]

		if item.isHeader {
			line := sectionHeaderStyle.Render(item.headerStr)
			if i > 0 {
				line = "\n" + line
			}
			lines = append(lines, line)
			continue
		}

		row := tl.formatRow(item)
		// Truncate to fit panel width (2 for indent prefix)
		if maxWidth := width - 2; maxWidth > 0 {
			row = ansi.Truncate(row, maxWidth, "…")
		}
		if i == tl.cursor {
			row = selectedItemStyle.Width(width - 2).Render(row)
		}
		lines = append(lines, "  "+row)
	}

	// Scroll indicators
	if tl.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(tl.flatItems) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (tl *TaskList) formatRow(item taskItem) string {
	t := item.task
	style := taskOpenStyle
	badge := "[ ]"
	if t.IsComplete() {
		style = taskDoneStyle
		badge = "[✓]"
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", item.depth))
	b.WriteString(style.Render(badge))
	b.WriteString(" ")
	b.WriteString(taskIDStyle.Render(events.ShortID(t.ID)))
	b.WriteString(" ")
	b.WriteString(style.Render(t.Name))
	if tags := formatTags(t); tags != "" {
		b.WriteString(" ")
		b.WriteString(taskTagStyle.Render(tags))
	}
	if t.Due != nil {
		due := "due " + t.Due.Local().Format(tl.dateLayout)
		if !t.IsComplete() && t.Due.Before(tl.now()) {
			due = taskOverdueStyle.Render(due)
		} else {
			due = overlayDimStyle.Render(due)
		}
		b.WriteString(" ")
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
