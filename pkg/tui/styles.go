package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed   = lipgloss.Color("#FF5555")
	colorGreen = lipgloss.Color("#50FA7B")
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorGray  = lipgloss.Color("#6272A4")
	colorPanel = lipgloss.Color("#44475A")

	tabStyle       = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorCyan).Background(colorPanel).Bold(true).Padding(0, 1)
	paramStyle     = lipgloss.NewStyle().Foreground(colorGray)
	headerStyle    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(colorGray)
	okStyle        = lipgloss.NewStyle().Foreground(colorGreen)
	critStyle      = lipgloss.NewStyle().Foreground(colorRed)
)
