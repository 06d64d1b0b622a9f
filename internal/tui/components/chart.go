package components

import (
	"fmt"
	"strings"

	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a themed unicode sparkline of the values.
// Done marks which points get the accent color.
func Sparkline(values []float64, done []bool) string {
	if len(values) == 0 {
		return ""
	}

	t := theme.Active
	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	doneStyle := lipgloss.NewStyle().Foreground(t.Accent)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		ch := string(sparkBlocks[idx])
		if i < len(done) && done[i] {
			b.WriteString(doneStyle.Render(ch))
		} else {
			b.WriteString(restStyle.Render(ch))
		}
	}

	return b.String()
}

// HBarChart renders labeled horizontal bars scaled to the largest value.
func HBarChart(labels []string, values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	t := theme.Active

	labelW := 0
	for _, l := range labels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	barW := width - labelW - 10
	if barW < 8 {
		barW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	valStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		filled := int(v / peak * float64(barW))
		if filled < 1 && v > 0 {
			filled = 1
		}
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, label))+" "+
				barStyle.Render(strings.Repeat("▇", filled))+" "+
				valStyle.Render(fmt.Sprintf("%.0f", v)))
	}

	return strings.Join(lines, "\n")
}
