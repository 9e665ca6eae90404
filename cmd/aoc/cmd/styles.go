package cmd

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	puzzleTitleStyle = lipgloss.NewStyle()

	pathStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
