package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripdash/internal/config"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTripFile = iota
	settingsFieldTheme
	settingsFieldDeparture
	settingsFieldStoreCap
	settingsFieldPhaseCap
	settingsFieldCount // sentinel
)

const departureLayout = "2006-01-02"

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) updateSettingsTab(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return true, a, nil
	case "enter":
		m, cmd := a.settingsStartEdit()
		return true, m, cmd
	}
	return false, a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTripFile:
		ti.Placeholder = config.DefaultTripPath()
		ti.SetValue(a.cfg.General.TripFile)
	case settingsFieldTheme:
		names := make([]string, 0, len(theme.All))
		for _, t := range theme.All {
			names = append(names, t.Name)
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldDeparture:
		ti.Placeholder = departureLayout + " (empty to follow the trip start date)"
		if a.cfg.Countdown.Departure != nil {
			ti.SetValue(a.cfg.Countdown.Departure.Format(departureLayout))
		}
	case settingsFieldStoreCap:
		ti.Placeholder = "256 (MiB)"
		ti.SetValue(strconv.Itoa(a.cfg.Photos.MaxStoreMB))
	case settingsFieldPhaseCap:
		ti.Placeholder = "64"
		ti.SetValue(strconv.Itoa(a.cfg.Photos.MaxPerPhase))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTripFile:
		cfg.General.TripFile = val
	case settingsFieldTheme:
		found := false
		for _, t := range theme.All {
			if t.Name == val {
				found = true
				break
			}
		}
		if found {
			cfg.Appearance.Theme = val
			theme.SetActive(val)
		}
	case settingsFieldDeparture:
		if val == "" {
			cfg.Countdown.Departure = nil
		} else if d, err := time.ParseInLocation(departureLayout, val, time.Local); err == nil {
			cfg.Countdown.Departure = &d
		}
	case settingsFieldStoreCap:
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Photos.MaxStoreMB = n
		}
	case settingsFieldPhaseCap:
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			cfg.Photos.MaxPerPhase = n
		}
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.cfg = cfg
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	tripFileDisplay := a.cfg.General.TripFile
	if tripFileDisplay == "" {
		tripFileDisplay = config.DefaultTripPath() + " (default)"
	}

	departureDisplay := "trip start date"
	if a.cfg.Countdown.Departure != nil {
		departureDisplay = a.cfg.Countdown.Departure.Format(departureLayout)
	}

	fields := []struct {
		label string
		value string
	}{
		{"Trip File", tripFileDisplay},
		{"Theme", a.cfg.Appearance.Theme},
		{"Departure", departureDisplay},
		{"Photo Store Cap", fmt.Sprintf("%d MiB", a.cfg.Photos.MaxStoreMB)},
		{"Photos Per Phase", strconv.Itoa(a.cfg.Photos.MaxPerPhase)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(selectedStyle.Render(f.value))
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))
	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("Trip file and photo caps apply on next launch."))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Trip:        ") + valueStyle.Render(a.trip.Name) + "\n")
	infoBody.WriteString(labelStyle.Render("Phases:      ") + valueStyle.Render(strconv.Itoa(len(a.trip.Phases))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About", infoBody.String(), cw))

	return b.String()
}
