package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// applyTheme forces light or dark colors. "system" keeps lipgloss's
// terminal background detection.
func applyTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Task list styles.
var (
	taskOpenStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	taskDoneStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	taskOverdueStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	taskTagStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	taskIDStyle      = lipgloss.NewStyle().Foreground(colorCyan)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// History styles.
var (
	historyAppliedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	historyUndoneStyle  = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Detail view styles.
var (
	detailLabelStyle = lipgloss.NewStyle().
				Width(14).
				Foreground(colorDim)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)
)

// Settings form styles.
var (
	settingsLabelStyle = lipgloss.NewStyle().
				Width(20).
				Foreground(colorDim)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	settingsToggleOn = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	settingsToggleOff = lipgloss.NewStyle().
				Foreground(colorRed)

	settingsCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)
