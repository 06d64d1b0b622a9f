package tui

import (
	"fmt"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/session"
	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCountdownTab(cw, contentH int) string {
	t := theme.Active
	cd := session.TimeRemaining(a.departure(), a.now)

	bigStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	unitStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	var b strings.Builder
	if cd.IsZero() {
		b.WriteString(greenStyle.Render("On the road!"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Departed "))
		b.WriteString(valStyle.Render(a.departure().Format("Monday, January 2 2006")))
	} else {
		segments := []struct {
			n    int
			unit string
		}{
			{cd.Days, "days"},
			{cd.Hours, "hours"},
			{cd.Minutes, "minutes"},
			{cd.Seconds, "seconds"},
		}
		var parts []string
		for _, seg := range segments {
			parts = append(parts,
				bigStyle.Render(fmt.Sprintf("%02d", seg.n))+" "+unitStyle.Render(seg.unit))
		}
		b.WriteString(strings.Join(parts, unitStyle.Render("  ·  ")))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Departing "))
		b.WriteString(valStyle.Render(a.departure().Format("Monday, January 2 2006")))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(cli.FormatCountdown(cd) + " to go"))
	}

	stats := a.sess.Progress()
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s ahead across %d phases",
		cli.FormatMiles(stats.TotalMiles), stats.PhaseCount)))

	return lipgloss.Place(cw, contentH, lipgloss.Center, lipgloss.Center, b.String())
}
