package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay constants.
const (
	overlayNone     = 0
	overlayHelp     = 1
	overlayTaskForm = 2
)

const resetSGR = "\x1b[0m"

// renderOverlay dims base and draws box over it, centered horizontally and
// a third of the way down.
func renderOverlay(base, box string, width, height int) string {
	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i, r := range rows {
		rows[i] = overlayDimStyle.Render(ansi.Strip(r))
	}

	boxWidth, boxHeight := lipgloss.Size(box)
	x := max((width-boxWidth)/2, 0)
	y := max((height-boxHeight)/3, 1)

	for i, line := range strings.Split(box, "\n") {
		if y+i >= len(rows) {
			break
		}
		rows[y+i] = splice(rows[y+i], line, x)
	}
	return strings.Join(rows, "\n")
}

// splice writes fg over bg starting at column x, padding bg when it is
// shorter than x.
func splice(bg, fg string, x int) string {
	bgWidth := ansi.StringWidth(bg)
	if bgWidth < x {
		bg += strings.Repeat(" ", x-bgWidth)
		bgWidth = x
	}

	var right string
	if end := x + ansi.StringWidth(fg); end < bgWidth {
		right = ansi.Cut(bg, end, bgWidth)
	}
	return ansi.Truncate(bg, x, "") + resetSGR + fg + resetSGR + right
}
