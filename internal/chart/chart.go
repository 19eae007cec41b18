// Package chart renders evaluation metrics as a terminal bar chart.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Width(12)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA"))

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4B5563"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
)

// A Metric is one named value in [0,1].
type Metric struct {
	Name  string
	Value float64
}

// Render returns a bar chart for the metrics, one row per metric. Values
// are clamped to [0,1].
func Render(metrics []Metric) string {
	var b strings.Builder
	for _, m := range metrics {
		v := m.Value
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}

		filled := int(v*barWidth + 0.5)
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			trackStyle.Render(strings.Repeat("░", barWidth-filled))

		b.WriteString(labelStyle.Render(m.Name))
		b.WriteString(" ")
		b.WriteString(bar)
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%6.2f%%", v*100)))
		b.WriteString("\n")
	}
	return b.String()
}
