// Package ui provides the lipgloss styles used for console status messages.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	noColor bool
)

// DisableColor switches all styles to plain text. Used for --no-color and
// the NO_COLOR environment variable.
func DisableColor() {
	noColor = true
}

// Error formats an error message in red with an "Error: " prefix.
func Error(msg string) string {
	return render(errorStyle, "Error: "+msg)
}

// Success formats a success message in green.
func Success(msg string) string {
	return render(successStyle, msg)
}

// Info formats an informational message in yellow.
func Info(msg string) string {
	return render(infoStyle, msg)
}

// Warn formats a warning message in yellow with a "Warning: " prefix.
func Warn(msg string) string {
	return render(warnStyle, "Warning: "+msg)
}

func render(style lipgloss.Style, msg string) string {
	if noColor {
		return msg
	}
	return style.Render(msg)
}
