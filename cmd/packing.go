package cmd

import (
	"fmt"

	"tripdash/internal/cli"

	"github.com/spf13/cobra"
)

var packingCmd = &cobra.Command{
	Use:   "packing",
	Short: "Show the packing checklist",
	RunE:  runPacking,
}

func init() {
	rootCmd.AddCommand(packingCmd)
}

func runPacking(_ *cobra.Command, _ []string) error {
	trip, _ := loadTrip()

	if len(trip.Packing.Categories) == 0 {
		fmt.Println()
		fmt.Println("  This trip has no packing list.")
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(trip.Name + " · Packing"))
	fmt.Println()

	for _, cat := range trip.Packing.Categories {
		rows := make([][]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			rows = append(rows, []string{item})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s (%d items)", cat.Name, len(cat.Items)),
			Headers: []string{"Item"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Printf("  %d items total. Check them off in `tripdash dashboard`.\n\n",
		trip.TotalPackingItems())
	return nil
}
