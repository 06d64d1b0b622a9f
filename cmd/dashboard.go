package cmd

import (
	"fmt"
	"os"

	"tripdash/internal/media"
	"tripdash/internal/session"
	"tripdash/internal/tui"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive dashboard",
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	trip, cfg := loadTrip()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Photo spool dir lives for exactly one dashboard run
	spoolDir, err := os.MkdirTemp("", "tripdash-media-")
	if err != nil {
		return fmt.Errorf("creating photo spool dir: %w", err)
	}
	defer os.RemoveAll(spoolDir)

	maxBytes := int64(cfg.Photos.MaxStoreMB) << 20
	store, err := media.Open(spoolDir, maxBytes, log.With().Str("component", "media").Logger())
	if err != nil {
		return fmt.Errorf("opening media store: %w", err)
	}

	sess := session.New(trip, store,
		session.WithMaxPhotosPerPhase(cfg.Photos.MaxPerPhase))
	defer sess.Close()

	app := tui.NewApp(sess, store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
