package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles mirroring the dashboard's colour coding.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1)
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	riskHighStyle       = CellStyle.Bold(true).Foreground(lipgloss.Color("#ff0000"))
	riskLowStyle        = CellStyle.Bold(true).Foreground(lipgloss.Color("#00cc00"))
	assessmentHighStyle = CellStyle.Bold(true).Foreground(lipgloss.Color("#ff9900"))
	assessmentStdStyle  = CellStyle.Bold(true).Foreground(lipgloss.Color("#0066ff"))

	statusStyles = map[string]lipgloss.Style{
		"Pending":  CellStyle.Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#fff176")),
		"Approved": CellStyle.Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#81c784")),
		"Rejected": CellStyle.Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#e57373")),
	}
)

func riskStyle(label string) lipgloss.Style {
	if strings.Contains(label, "High") {
		return riskHighStyle
	}
	return riskLowStyle
}

func assessmentStyle(label string) lipgloss.Style {
	if strings.Contains(label, "High") {
		return assessmentHighStyle
	}
	return assessmentStdStyle
}

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return CellStyle
}
