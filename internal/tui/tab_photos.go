package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tripdash/internal/cli"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// photosState tracks the photos tab: which phase is shown, which
// attachment is selected, and the attach-file prompt.
type photosState struct {
	phase     int
	sel       int
	attaching bool
	input     textinput.Model
}

func newAttachInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/photo.jpg"
	ti.CharLimit = 512
	ti.Width = 50
	return ti
}

func (a App) currentPhotoPhase() string {
	if a.photos.phase < 0 || a.photos.phase >= len(a.trip.Phases) {
		return ""
	}
	return a.trip.Phases[a.photos.phase].ID
}

func (a App) updatePhotosTab(key string) (bool, tea.Model, tea.Cmd) {
	phaseID := a.currentPhotoPhase()
	count := len(a.sess.Photos(phaseID))

	switch key {
	case "[":
		a.photos.phase = (a.photos.phase - 1 + len(a.trip.Phases)) % len(a.trip.Phases)
		a.photos.sel = 0
		return true, a, nil
	case "]":
		a.photos.phase = (a.photos.phase + 1) % len(a.trip.Phases)
		a.photos.sel = 0
		return true, a, nil
	case "j", "down":
		if a.photos.sel < count-1 {
			a.photos.sel++
		}
		return true, a, nil
	case "k", "up":
		if a.photos.sel > 0 {
			a.photos.sel--
		}
		return true, a, nil
	case "a":
		a.photos.attaching = true
		a.photos.input = newAttachInput()
		a.photos.input.Focus()
		return true, a, a.photos.input.Cursor.BlinkCmd()
	case "d":
		if count == 0 {
			return true, a, nil
		}
		if err := a.sess.DetachPhoto(phaseID, a.photos.sel); err != nil {
			a.flash = err.Error()
			a.flashErr = true
		} else {
			a.flash = "photo detached"
			if a.photos.sel >= count-1 && a.photos.sel > 0 {
				a.photos.sel--
			}
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) updateAttachInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(a.photos.input.Value())
		a.photos.attaching = false
		if path == "" {
			return a, nil
		}
		a.attachFile(path)
		return a, nil
	case "esc":
		a.photos.attaching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.photos.input, cmd = a.photos.input.Update(msg)
	return a, cmd
}

func (a *App) attachFile(path string) {
	phaseID := a.currentPhotoPhase()

	f, err := os.Open(path)
	if err != nil {
		a.flash = fmt.Sprintf("cannot open %s: %v", path, err)
		a.flashErr = true
		return
	}
	defer f.Close()

	att, err := a.sess.AttachPhoto(phaseID, f, filepath.Base(path))
	if err != nil {
		a.flash = fmt.Sprintf("attach failed: %v", err)
		a.flashErr = true
		return
	}
	a.flash = fmt.Sprintf("attached %s (%s)", att.Name, cli.FormatBytes(att.Ref.Size))
}

func (a App) renderPhotosTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selectedStyle := lipgloss.NewStyle().Background(t.SurfaceBright).Width(innerW)

	phaseID := a.currentPhotoPhase()
	phaseName := phaseID
	if p := a.trip.PhaseByID(phaseID); p != nil {
		phaseName = p.Name
	}

	var body strings.Builder
	body.WriteString(dimStyle.Render("◂ ["))
	body.WriteString(accentStyle.Render(phaseName))
	body.WriteString(dimStyle.Render("] ▸"))
	body.WriteString(labelStyle.Render(fmt.Sprintf("  phase %d of %d", a.photos.phase+1, len(a.trip.Phases))))
	body.WriteString("\n\n")

	if a.photos.attaching {
		body.WriteString(labelStyle.Render("Attach file: "))
		body.WriteString(a.photos.input.View())
		body.WriteString("\n")
		body.WriteString(dimStyle.Render("[enter] attach  [esc] cancel"))
		body.WriteString("\n\n")
	}

	photos := a.sess.Photos(phaseID)
	if len(photos) == 0 {
		body.WriteString(dimStyle.Render("No photos for this phase. Press [a] to attach one."))
	} else {
		for i, att := range photos {
			line := fmt.Sprintf(" %s  %s  %s",
				valStyle.Render(truncStr(att.Name, innerW-30)),
				dimStyle.Render(cli.FormatBytes(att.Ref.Size)),
				dimStyle.Render(att.At.Format("15:04:05")))
			if i == a.photos.sel {
				line = selectedStyle.Render(line)
			}
			body.WriteString(line)
			body.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Photos", body.String(), cw))
	b.WriteString("\n")

	if a.store != nil {
		var usage strings.Builder
		pct := 0.0
		if a.store.CapBytes() > 0 {
			pct = float64(a.store.UsedBytes()) / float64(a.store.CapBytes())
		}
		barW := innerW - 8
		if barW < 10 {
			barW = 10
		}
		usage.WriteString(components.ProgressBar(pct, barW))
		usage.WriteString("\n")
		usage.WriteString(labelStyle.Render(fmt.Sprintf("%s of %s spooled · %d attachments held",
			cli.FormatBytes(a.store.UsedBytes()), cli.FormatBytes(a.store.CapBytes()), a.store.Held())))
		b.WriteString(components.ContentCard("Store", usage.String(), cw))
	}

	return b.String()
}
