package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSurface1 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	fieldStyle       = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	fieldActiveStyle = fieldStyle.BorderForeground(colorAccent)
	fieldErrorStyle  = fieldStyle.BorderForeground(colorError)

	presetStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	presetActiveStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true).Padding(0, 1)

	monthLabelStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	weekdayStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(3).Align(lipgloss.Right)
	dayStyle        = lipgloss.NewStyle().Foreground(colorText).Width(3).Align(lipgloss.Right)
	dayInRangeStyle = dayStyle.Background(colorSurface1)
	dayEndStyle     = dayStyle.Foreground(colorBase).Background(colorAccent).Bold(true)
	dayTodayStyle   = dayStyle.Underline(true)
	dayCursorStyle  = dayStyle.Reverse(true)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
