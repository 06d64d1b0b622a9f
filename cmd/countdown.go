package cmd

import (
	"fmt"
	"time"

	"tripdash/internal/cli"
	"tripdash/internal/session"

	"github.com/spf13/cobra"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the time remaining until departure",
	RunE:  runCountdown,
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(_ *cobra.Command, _ []string) error {
	trip, cfg := loadTrip()

	departure := trip.StartDate
	source := "trip start date"
	if cfg.Countdown.Departure != nil {
		departure = *cfg.Countdown.Departure
		source = "config override"
	}

	cd := session.TimeRemaining(departure, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(trip.Name))
	fmt.Println()

	if cd.IsZero() {
		fmt.Printf("  On the road! Departed %s.\n",
			departure.Format("Monday, January 2 2006"))
	} else {
		fmt.Printf("  %s until departure\n", cli.FormatCountdown(cd))
		fmt.Printf("  Departing %s (%s)\n",
			departure.Format("Monday, January 2 2006"), source)
	}
	fmt.Println()
	return nil
}
