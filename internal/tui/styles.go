package tui

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	dateStyle       = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	weekNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle       = lipgloss.NewStyle().MarginTop(1)
)
