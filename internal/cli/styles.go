// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	PrimaryColor = lipgloss.Color("#2E9E5B") // leaf green
	SuccessColor = lipgloss.Color("#4ECDC4")
	WarningColor = lipgloss.Color("#F4A261") // amber, used for hazardous hints too
	ErrorColor   = lipgloss.Color("#E63946")
	InfoColor    = lipgloss.Color("#8ECAE6")
	SubtleColor  = lipgloss.Color("#6B7280")
	BorderColor  = lipgloss.Color("#3F4A3C")
)

// Text styles shared by the presenter, the TUI and the commands.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(SubtleColor).MarginBottom(1)
	SuccessStyle  = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle  = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ErrorColor)
	InfoStyle     = lipgloss.NewStyle().Foreground(InfoColor)
	SubtleStyle   = lipgloss.NewStyle().Foreground(SubtleColor)
	BoldStyle     = lipgloss.NewStyle().Bold(true)
	ProgressStyle = lipgloss.NewStyle().Foreground(PrimaryColor)
	PromptStyle   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	// BoxStyle frames a classification result.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// TableHeaderStyle underlines the header row of tabular output.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(BorderColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	LeafIcon    = "🌱"
	SparkIcon   = "✨"
	RupeeIcon   = "₹"
)

func withIcon(style lipgloss.Style, icon, message string) string {
	return style.Render(icon + " " + message)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return withIcon(SuccessStyle, SuccessIcon, message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return withIcon(ErrorStyle, ErrorIcon, message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return withIcon(WarningStyle, WarningIcon, message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return withIcon(InfoStyle, InfoIcon, message)
}

// FormatTitle formats a section title with the leaf icon.
func FormatTitle(title string) string {
	return withIcon(TitleStyle, LeafIcon, title)
}

// FormatPrompt formats the label in front of a text input.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}
