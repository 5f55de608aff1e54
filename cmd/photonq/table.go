package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/photonq/analyzer"
)

// Lipgloss styles for the distribution table.
var (
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7dcfff"))

	hitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ece6a"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))
)

// renderTable lays the distribution out as a bordered two-column table.
// Zero-probability rows are dimmed so the surviving outcomes stand out.
func renderTable(input string, t *analyzer.Table) string {
	var rows []string
	rows = append(rows, headerStyle.Render(fmt.Sprintf("%-10s %-12s %s", "output", "P", "amplitude")))

	for _, e := range t.Entries() {
		switch {
		case e.Err != nil:
			rows = append(rows, errStyle.Render(fmt.Sprintf("%-10s %s", e.Output, e.Err)))
		case e.Probability > 1e-15:
			line := fmt.Sprintf("%-10s %-12.9f %+.6f%+.6fi",
				e.Output, e.Probability, real(e.Amplitude), imag(e.Amplitude))
			rows = append(rows, hitStyle.Render(line))
		default:
			rows = append(rows, dimStyle.Render(fmt.Sprintf("%-10s %-12.9f", e.Output, 0.0)))
		}
	}
	rows = append(rows, "")
	rows = append(rows, headerStyle.Render(fmt.Sprintf("post-selection success: %.9f", t.Total())))

	body := tableStyle.Render(strings.Join(rows, "\n"))
	title := titleStyle.Render(fmt.Sprintf("post-selected distribution from %s", input))

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}
