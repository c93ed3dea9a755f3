package render

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	// Process fill colors, cycled in placement order
	processPalette = []lipgloss.Color{
		lipgloss.Color("#00D7FF"),
		lipgloss.Color("#FF00FF"),
		lipgloss.Color("#FFA500"),
		lipgloss.Color("#04B575"),
		lipgloss.Color("#F4D35E"),
		lipgloss.Color("#EE6C4D"),
	}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	freeStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	placedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	unplacedStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
