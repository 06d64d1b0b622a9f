package tui

import (
	"fmt"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updatePhasesTab(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.phaseCursor < len(a.trip.Phases)-1 {
			a.phaseCursor++
		}
		return true, a, nil
	case "k", "up":
		if a.phaseCursor > 0 {
			a.phaseCursor--
		}
		return true, a, nil
	case "g":
		a.phaseCursor = 0
		return true, a, nil
	case "G":
		a.phaseCursor = len(a.trip.Phases) - 1
		return true, a, nil
	case " ":
		if a.phaseCursor < len(a.trip.Phases) {
			id := a.trip.Phases[a.phaseCursor].ID
			if err := a.sess.TogglePhase(id); err != nil {
				a.flash = err.Error()
				a.flashErr = true
			}
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderPhasesTab(cw int) string {
	t := theme.Active
	stats := a.sess.Progress()
	innerW := components.CardInnerWidth(cw)

	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	doneNameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceBright).Width(innerW)

	var body strings.Builder
	for i, p := range a.trip.Phases {
		done := a.sess.PhaseComplete(p.ID)

		box := dimStyle.Render("[ ]")
		name := nameStyle.Render(p.Name)
		if done {
			box = doneStyle.Render("[x]")
			name = doneNameStyle.Render(p.Name)
		}

		detail := dimStyle.Render(fmt.Sprintf("  %s · %s",
			cli.FormatMiles(p.Miles), cli.FormatHours(p.Hours)))

		line := fmt.Sprintf("%s %s%s", box, name, detail)
		if i == a.phaseCursor {
			line = markerStyle.Render("▸ ") + line
			line = selectedStyle.Render(line)
		} else {
			line = "  " + line
		}

		body.WriteString(line)
		body.WriteString("\n")
	}

	body.WriteString("\n")
	barW := innerW - 8
	if barW < 10 {
		barW = 10
	}
	body.WriteString(components.ProgressBar(stats.Percent/100, barW))
	body.WriteString("\n")
	body.WriteString(dimStyle.Render(fmt.Sprintf("%s of %s driven · %s of %s behind the wheel",
		cli.FormatMiles(stats.CompletedMiles), cli.FormatMiles(stats.TotalMiles),
		cli.FormatHours(stats.CompletedHours), cli.FormatHours(stats.TotalHours))))

	return components.ContentCard("Phases", body.String(), cw)
}
