package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskfold/taskfold/internal/models"
)

func renderHeader(tasks []models.Task, leftTab, rightTab int, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Taskfold")

	leftTabs := renderTabs([]string{"Tasks", "Settings"}, leftTab)
	rightTabs := renderTabs([]string{"Details", "History"}, rightTab)

	open := 0
	for _, t := range tasks {
		if !t.IsComplete() {
			open++
		}
	}
	count := lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("%d open / %d", open, len(tasks)))

	// Layout: dot name  leftTabs    rightTabs  count
	left := fmt.Sprintf(" %s %s  %s", dot, name, leftTabs)
	right := fmt.Sprintf("%s  %s ", rightTabs, count)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}
