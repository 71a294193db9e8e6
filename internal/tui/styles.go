package tui

import "github.com/charmbracelet/lipgloss"

// Application branding constants
const (
	AppName = "LCD NAVIGATOR"
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	LCDColor    = lipgloss.Color("#9ACD32") // LCD backlight green
)

// Common styles
var (
	// Title style - bold header above the display
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// LCDStyle frames the captured display like a character LCD panel
	LCDStyle = lipgloss.NewStyle().
			Foreground(LCDColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1)

	// StatusStyle is the line below the display (position, scroll hint)
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// EditBadgeStyle marks the selection/edit flag
	EditBadgeStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// HelpStyle wraps the bubbles help footer
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)
