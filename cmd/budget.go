package cmd

import (
	"fmt"
	"sort"

	"tripdash/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the trip budget allocations",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	trip, _ := loadTrip()

	if len(trip.Budget) == 0 {
		fmt.Println()
		fmt.Println("  This trip has no budget allocations.")
		fmt.Println()
		return nil
	}

	cats := make([]string, 0, len(trip.Budget))
	var total float64
	for c, amount := range trip.Budget {
		cats = append(cats, c)
		total += amount
	}
	sort.Strings(cats)

	rows := make([][]string, 0, len(cats)+2)
	for _, c := range cats {
		share := trip.Budget[c] / total * 100
		rows = append(rows, []string{
			c,
			cli.FormatMoney(trip.Budget[c]),
			cli.FormatPercent(share),
			cli.RenderBar(share, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(total), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   trip.Name,
		Headers: []string{"Category", "Allocated", "Share", "Bar"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
