package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"tripdash/internal/config"
	"tripdash/internal/itinerary"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to tripdash!")
	fmt.Println()

	// 1. Trip file
	fmt.Println("  1. Trip file")
	fmt.Println("     TOML file with your route, packing list, and budget.")
	fmt.Printf("     Default: %s\n", config.DefaultTripPath())
	fmt.Print("     > ")
	tripFile, _ := reader.ReadString('\n')
	tripFile = strings.TrimSpace(tripFile)
	if tripFile != "" {
		cfg.General.TripFile = tripFile
	}
	fmt.Println()

	// 2. Departure override
	fmt.Println("  2. Departure date override (YYYY-MM-DD)")
	fmt.Println("     Leave blank to count down to the trip's start date.")
	fmt.Print("     > ")
	depRaw, _ := reader.ReadString('\n')
	depRaw = strings.TrimSpace(depRaw)
	if depRaw != "" {
		dep, err := time.ParseInLocation("2006-01-02", depRaw, time.Local)
		if err != nil {
			fmt.Printf("     Could not parse %q, keeping the trip start date.\n", depRaw)
		} else {
			cfg.Countdown.Departure = &dep
		}
	} else {
		cfg.Countdown.Departure = nil
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Desert Sunset")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "desert-sunset"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	// 4. Sample trip
	tripPath := config.TripPath(cfg)
	if _, err := os.Stat(tripPath); os.IsNotExist(err) {
		fmt.Printf("  4. No trip file at %s\n", tripPath)
		fmt.Print("     Write a Route 66 sample itinerary there? [Y/n] ")
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer == "" || answer == "y" || answer == "yes" {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			if err := itinerary.Save(itinerary.Sample(), tripPath); err != nil {
				return fmt.Errorf("writing sample trip: %w", err)
			}
			fmt.Printf("     Wrote %s\n", tripPath)
		}
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `tripdash setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
