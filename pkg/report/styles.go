package report

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle   = lipgloss.NewStyle().Foreground(colorGray)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed)
	warnStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle    = lipgloss.NewStyle().Foreground(colorGreen)
)

// coefficientColor grades a readiness coefficient with the same thresholds
// the recommendation engine uses for the baseline.
func coefficientColor(v float64) lipgloss.Style {
	switch {
	case v < 0.3:
		return critStyle
	case v < 0.6:
		return warnStyle
	default:
		return okStyle
	}
}
