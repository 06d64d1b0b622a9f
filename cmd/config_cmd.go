package cmd

import (
	"fmt"
	"strconv"

	"tripdash/internal/cli"
	"tripdash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	departure := "(trip start date)"
	if cfg.Countdown.Departure != nil {
		departure = cfg.Countdown.Departure.Format("2006-01-02")
	}

	tripFile := cfg.General.TripFile
	if tripFile == "" {
		tripFile = config.DefaultTripPath() + " (default)"
	}

	rows := [][]string{
		{"Config file", config.Path()},
		{"Trip file", tripFile},
		{"Departure", departure},
		{"Theme", cfg.Appearance.Theme},
		{"Photo store cap", fmt.Sprintf("%d MiB", cfg.Photos.MaxStoreMB)},
		{"Photos per phase", strconv.Itoa(cfg.Photos.MaxPerPhase)},
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Configuration",
		Headers: []string{"Setting", "Value"},
		Rows:    rows,
	}))

	if !config.Exists() {
		fmt.Println("  No config file yet. Run `tripdash setup` to create one.")
	}
	fmt.Println()
	return nil
}
