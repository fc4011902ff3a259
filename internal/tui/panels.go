package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minPanelWidth = 20

// panelLayout holds the outer size of each panel, borders included.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
}

// computeLayout splits width between the panels and leaves a line each for
// the header and the status bar.
func computeLayout(width, height int, splitRatio float64) panelLayout {
	left := max(int(float64(width)*splitRatio), minPanelWidth)
	return panelLayout{
		leftWidth:     left,
		rightWidth:    max(width-left, minPanelWidth),
		contentHeight: max(height-2, 1),
	}
}

func renderPanels(left, right string, layout panelLayout, focusedPanel int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(left, layout.leftWidth, layout.contentHeight, focusedPanel == 0),
		renderPanel(right, layout.rightWidth, layout.contentHeight, focusedPanel == 1),
	)
}

// renderPanel draws content in a bordered box of the given outer size.
func renderPanel(content string, width, height int, focused bool) string {
	style := unfocusedBorderStyle
	if focused {
		style = focusedBorderStyle
	}
	innerWidth, innerHeight := max(width-2, 1), max(height-2, 1)
	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(fitContent(content, innerWidth, innerHeight))
}

// fitContent clips content to width columns and height lines.
func fitContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
