package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Style helper functions
func Title(text string) string     { return titleStyle.Render(text) }
func Section(text string) string   { return sectionStyle.Render(text) }
func Success(text string) string   { return successStyle.Render(text) }
func Warn(text string) string      { return warningStyle.Render(text) }
func Error(text string) string     { return errorStyle.Render(text) }
func Highlight(text string) string { return highlightStyle.Render(text) }
func Dim(text string) string       { return dimStyle.Render(text) }
