package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "163", Dark: "212"}
	danger = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
)

var (
	appStyle        = lipgloss.NewStyle().Margin(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle      = lipgloss.NewStyle().Faint(true)
	helpStyle       = mutedStyle.Italic(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(1, 3)
)
