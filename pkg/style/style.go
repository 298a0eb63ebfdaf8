// Package style implements the terminal styling hooks consumed by the cli
// package. It is the only place that touches lipgloss; the core invokes it
// through a narrow function interface, so alternative stylers can be plugged in
// via the configuration.
package style

import "github.com/charmbracelet/lipgloss"

const (
	errorColor = "196"
	dimColor   = "245"
)

// Heading renders a help heading in bold, underlined italics with the given
// ANSI-256 foreground color.
func Heading(text, color string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Italic(true).
		Foreground(lipgloss.Color(color)).
		Render(text)
}

// ErrorHeading renders the first line of an error report.
func ErrorHeading(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(errorColor)).
		Render(text)
}

// Dim renders secondary text, such as the cause lines of an error chain.
func Dim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(dimColor)).
		Render(text)
}
