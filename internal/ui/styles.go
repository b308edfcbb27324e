// Package ui holds the shared terminal styles for CLI output.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	Header  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	Prompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// Successf renders a green message.
func Successf(format string, args ...any) string {
	return Success.Render(fmt.Sprintf(format, args...))
}

// Warnf renders a yellow message.
func Warnf(format string, args ...any) string {
	return Warning.Render(fmt.Sprintf(format, args...))
}

// Errorf renders a red message.
func Errorf(format string, args ...any) string {
	return Error.Render(fmt.Sprintf(format, args...))
}

// Infof renders a magenta message.
func Infof(format string, args ...any) string {
	return Info.Render(fmt.Sprintf(format, args...))
}
