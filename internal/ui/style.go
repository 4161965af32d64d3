package ui

import "github.com/charmbracelet/lipgloss"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// OK renders a success label.
func OK(s string) string { return okStyle.Render(s) }

// Warn renders a warning label.
func Warn(s string) string { return warnStyle.Render(s) }

// Bad renders a failure label.
func Bad(s string) string { return badStyle.Render(s) }
