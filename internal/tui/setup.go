package tui

import (
	"os"

	"tripdash/internal/config"
	"tripdash/internal/itinerary"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run wizard answers.
type setupValues struct {
	tripFile    string
	theme       string
	writeSample bool
}

func defaultSetupValues(cfg config.Config) setupValues {
	tripFile := cfg.General.TripFile
	if tripFile == "" {
		tripFile = config.DefaultTripPath()
	}
	return setupValues{
		tripFile:    tripFile,
		theme:       cfg.Appearance.Theme,
		writeSample: true,
	}
}

func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tripdash!").
				Description("A couple of questions and you're on the road."),
			huh.NewInput().
				Title("Trip file").
				Description("TOML file describing your route, packing list, and budget.").
				Value(&v.tripFile),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.theme),
			huh.NewConfirm().
				Title("Write a sample trip?").
				Description("Creates a Route 66 demo itinerary if the trip file is missing.").
				Value(&v.writeSample),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg := a.cfg

	if a.setupVals.tripFile != "" {
		cfg.General.TripFile = a.setupVals.tripFile
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(cfg.Appearance.Theme)
	}

	if err := config.Save(cfg); err != nil {
		a.flash = "could not save config: " + err.Error()
		a.flashErr = true
		return
	}
	a.cfg = cfg

	if a.setupVals.writeSample {
		path := config.TripPath(cfg)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := itinerary.Save(itinerary.Sample(), path); err != nil {
				a.flash = "could not write sample trip: " + err.Error()
				a.flashErr = true
				return
			}
			a.flash = "sample trip written to " + path
		}
	}
}
