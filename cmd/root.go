// Package cmd wires up the tripdash command line interface.
package cmd

import (
	"errors"
	"os"

	"tripdash/internal/config"
	"tripdash/internal/itinerary"
	"tripdash/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagTrip    string
	flagQuiet   bool
	flagVerbose bool
)

// log is the shared CLI logger, configured in the persistent pre-run.
var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "tripdash",
	Short: "Road trip dashboard",
	Long:  "Track route progress, spending, packing, and the countdown to departure.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := zerolog.InfoLevel
		if flagQuiet {
			level = zerolog.ErrorLevel
		}
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTrip, "trip", "t", "", "Trip definition file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// loadTrip is the shared trip loading path used by all commands: the --trip
// flag wins, then the configured file. A missing file falls back to the
// bundled sample so every command works out of the box.
func loadTrip() (*model.Trip, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, using defaults")
	}

	path := config.TripPath(cfg)
	if flagTrip != "" {
		path = flagTrip
	}

	trip, err := itinerary.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no trip file, using sample itinerary")
		} else {
			log.Error().Str("path", path).Err(err).Msg("trip file invalid, using sample itinerary")
		}
		return itinerary.Sample(), cfg
	}

	log.Debug().Str("path", path).Str("trip", trip.Name).Msg("trip loaded")
	return trip, cfg
}
