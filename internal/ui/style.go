package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/errdoc-dev/errdoc/internal/rule"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // light cyan
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))   // cyan
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	fixStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))   // green
	exampleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))   // blue

	severityStyles = map[rule.Severity]lipgloss.Style{
		rule.SeverityLow:      dimStyle,
		rule.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),   // yellow
		rule.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
		rule.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // red
	}
)

func severityLabel(s rule.Severity) string {
	style, ok := severityStyles[s]
	if !ok {
		style = dimStyle
	}
	return style.Render("[" + s.String() + "]")
}
