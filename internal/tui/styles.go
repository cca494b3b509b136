// Package tui provides an interactive pager over rendered forecasts.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#ffe66d") // Yellow - title
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - day status
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
