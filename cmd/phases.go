package cmd

import (
	"fmt"

	"tripdash/internal/cli"
	"tripdash/internal/session"

	"github.com/spf13/cobra"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the trip's route phases",
	RunE:  runPhases,
}

func init() {
	rootCmd.AddCommand(phasesCmd)
}

func runPhases(_ *cobra.Command, _ []string) error {
	trip, _ := loadTrip()

	sess := session.New(trip, nil)
	defer sess.Close()
	stats := sess.Progress()

	rows := make([][]string, 0, len(trip.Phases)+2)
	for _, p := range trip.Phases {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			cli.FormatMiles(p.Miles),
			cli.FormatHours(p.Hours),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"",
		"Total",
		cli.FormatMiles(stats.TotalMiles),
		cli.FormatHours(stats.TotalHours),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s · %d phases", trip.Name, stats.PhaseCount),
		Headers: []string{"ID", "Phase", "Miles", "Drive"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
