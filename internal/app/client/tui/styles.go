package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	dialog  lipgloss.Style
	label   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2),
		label: lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("7")),
	}
}
