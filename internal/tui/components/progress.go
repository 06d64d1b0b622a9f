package components

import (
	"fmt"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a trip-progress bar with percentage. pct is 0-1.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	// Color shifts as the trip gets closer to done
	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.AccentBright
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Blue
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForSpend returns green/yellow/orange/red based on how much of a
// budget allocation has been spent. pct is spent/allocated.
func ColorForSpend(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1.0:
		return string(t.Red)
	case pct >= 0.85:
		return string(t.Orange)
	case pct >= 0.6:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled spend bar with amount remaining.
// Overspent categories clamp the bar full and show a negative remainder.
func BudgetBar(category string, spent, allocated float64, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if allocated > 0 {
		pct = spent / allocated
	} else if spent > 0 {
		pct = 1
	}
	shown := pct
	if shown > 1 {
		shown = 1
	}
	if shown < 0 {
		shown = 0
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForSpend(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForSpend(pct))).Bold(true)
	restStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	rest := ""
	if allocated > 0 {
		remaining := allocated - spent
		if remaining >= 0 {
			rest = cli.FormatMoney(remaining) + " left"
		} else {
			rest = cli.FormatMoney(remaining) + " over"
		}
	} else {
		rest = "no allocation"
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, category)) +
		" " +
		bar.ViewAs(shown) +
		" " +
		amountStyle.Render(fmt.Sprintf("%8s", cli.FormatMoney(spent))) +
		"  " +
		restStyle.Render(rest)
}

// Checkbox renders a packing-list checkbox line.
func Checkbox(label string, checked, selected bool, width int) string {
	t := theme.Active

	box := "[ ]"
	style := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if checked {
		box = "[x]"
		style = lipgloss.NewStyle().Foreground(t.TextMuted).Strikethrough(true)
	}

	line := fmt.Sprintf(" %s %s", box, style.Render(label))
	if selected {
		return lipgloss.NewStyle().
			Background(t.SurfaceBright).
			Width(width).
			Render(line)
	}
	return line
}
