package cmd

import (
	"fmt"
	"sort"
	"time"

	"tripdash/internal/cli"
	"tripdash/internal/session"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the trip at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	trip, cfg := loadTrip()

	sess := session.New(trip, nil)
	defer sess.Close()

	stats := sess.Progress()

	departure := trip.StartDate
	if cfg.Countdown.Departure != nil {
		departure = *cfg.Countdown.Departure
	}
	cd := session.TimeRemaining(departure, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(trip.Name))
	fmt.Println()

	fmt.Printf("  Departure:  %s (%s)\n",
		departure.Format("Monday, January 2 2006"),
		cli.FormatCountdown(cd))
	fmt.Printf("  Route:      %s · %s across %d phases\n",
		cli.FormatMiles(stats.TotalMiles),
		cli.FormatHours(stats.TotalHours),
		stats.PhaseCount)
	fmt.Printf("  Budget:     %s allocated across %d categories\n",
		cli.FormatMoney(sess.TotalBudget()),
		len(trip.Budget))
	fmt.Printf("  Packing:    %d items in %d categories\n",
		trip.TotalPackingItems(),
		len(trip.Packing.Categories))
	fmt.Println()

	rows := make([][]string, 0, len(trip.Phases))
	for _, p := range trip.Phases {
		rows = append(rows, []string{
			p.Name,
			cli.FormatMiles(p.Miles),
			cli.FormatHours(p.Hours),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMiles(stats.TotalMiles),
		cli.FormatHours(stats.TotalHours),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Route",
		Headers: []string{"Phase", "Miles", "Drive"},
		Rows:    rows,
	}))

	miles := make([]float64, len(trip.Phases))
	for i, p := range trip.Phases {
		miles[i] = p.Miles
	}
	fmt.Printf("  %s  miles per phase\n\n", cli.RenderSparkline(miles))

	if len(trip.Budget) > 0 {
		cats := make([]string, 0, len(trip.Budget))
		for c := range trip.Budget {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		var budgetRows [][]string
		for _, c := range cats {
			budgetRows = append(budgetRows, []string{c, cli.FormatMoney(trip.Budget[c])})
		}
		budgetRows = append(budgetRows, []string{"---"})
		budgetRows = append(budgetRows, []string{"Total", cli.FormatMoney(sess.TotalBudget())})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Budget",
			Headers: []string{"Category", "Allocated"},
			Rows:    budgetRows,
		}))
		fmt.Println()
	}

	fmt.Println("  Run `tripdash dashboard` to track progress, spending, and packing.")
	fmt.Println()
	return nil
}
