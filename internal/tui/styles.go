package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorPrimary = lipgloss.Color("#CBA6F7") // mauve
	ColorAccent  = lipgloss.Color("#F5E0DC") // rosewater
	ColorError   = lipgloss.Color("#F38BA8") // red
	ColorMuted   = lipgloss.Color("#6C7086") // overlay0
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
)
