package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7AA2F7")
	successColor = lipgloss.Color("#4ECDC4")
	warningColor = lipgloss.Color("#FFE66D")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	batchMarkStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(primaryColor)

	confidenceHigh = lipgloss.NewStyle().Foreground(successColor)
	confidenceMid  = lipgloss.NewStyle().Foreground(warningColor)
	confidenceLow  = lipgloss.NewStyle().Foreground(errorColor)
)

// confidenceStyle picks a style for a 0..1 score.
func confidenceStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.9:
		return confidenceHigh
	case score >= 0.7:
		return confidenceMid
	default:
		return confidenceLow
	}
}
