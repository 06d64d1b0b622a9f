package tui

import (
	"fmt"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/session"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.sess.Progress()
	cd := session.TimeRemaining(a.departure(), a.now)

	metrics := []components.Metric{
		{
			Label: "Progress",
			Value: cli.FormatPercent(stats.Percent),
			Note:  fmt.Sprintf("%d of %d phases", stats.PhasesDone, stats.PhaseCount),
		},
		{
			Label: "Miles",
			Value: cli.FormatMiles(stats.CompletedMiles),
			Note:  "of " + cli.FormatMiles(stats.TotalMiles),
		},
		{
			Label: "Spent",
			Value: cli.FormatMoney(a.sess.TotalSpent()),
			Note:  "of " + cli.FormatMoney(a.sess.TotalBudget()),
		},
		{
			Label: "Packed",
			Value: fmt.Sprintf("%d/%d", a.sess.PackedTotal(), a.trip.TotalPackingItems()),
			Note:  "items ready",
		},
		{
			Label: "Departure",
			Value: cli.FormatCountdown(cd),
			Note:  a.departure().Format("Jan 2"),
		},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Route and Budget share a card row when there is a budget to show.
	rows := a.sess.BudgetRows()
	routeW := cw
	budgetW := 0
	if len(rows) > 0 {
		widths := components.LayoutRow(cw, 2)
		routeW, budgetW = widths[0], widths[1]
	}

	// Route card: overall bar plus a per-phase mileage sparkline
	innerW := components.CardInnerWidth(routeW)
	barW := innerW - 8
	if barW < 10 {
		barW = 10
	}

	values := make([]float64, len(a.trip.Phases))
	done := make([]bool, len(a.trip.Phases))
	for i, p := range a.trip.Phases {
		values[i] = p.Miles
		done[i] = a.sess.PhaseComplete(p.ID)
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var route strings.Builder
	route.WriteString(components.ProgressBar(stats.Percent/100, barW))
	route.WriteString("\n\n")
	route.WriteString(components.Sparkline(values, done))
	route.WriteString("  ")
	route.WriteString(labelStyle.Render("miles per phase"))
	route.WriteString("\n")
	route.WriteString(labelStyle.Render("Driving done: "))
	route.WriteString(valStyle.Render(cli.FormatHours(stats.CompletedHours)))
	route.WriteString(labelStyle.Render(" of "))
	route.WriteString(valStyle.Render(cli.FormatHours(stats.TotalHours)))
	routeCard := components.ContentCard("Route", route.String(), routeW)

	if len(rows) == 0 {
		b.WriteString(routeCard)
		return b.String()
	}

	// Budget card: one bar per category, paired next to the route card
	labelW := 0
	for _, r := range rows {
		if len(r.Category) > labelW {
			labelW = len(r.Category)
		}
	}
	budgetBarW := components.CardInnerWidth(budgetW) - labelW - 30
	if budgetBarW < 10 {
		budgetBarW = 10
	}

	var budget strings.Builder
	for i, r := range rows {
		if i > 0 {
			budget.WriteString("\n")
		}
		budget.WriteString(components.BudgetBar(r.Category, r.Spent, r.Allocated, labelW, budgetBarW))
	}
	budgetCard := components.ContentCard("Budget", budget.String(), budgetW)

	b.WriteString(components.CardRow([]string{routeCard, budgetCard}))
	return b.String()
}
