package tui

import (
	"fmt"
	"strings"

	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// packLine addresses one item in the flattened packing list.
type packLine struct {
	category string
	item     string
}

func (a App) packLines() []packLine {
	var lines []packLine
	for _, cat := range a.trip.Packing.Categories {
		for _, item := range cat.Items {
			lines = append(lines, packLine{cat.Name, item})
		}
	}
	return lines
}

func (a App) updatePackingTab(key string) (bool, tea.Model, tea.Cmd) {
	lines := a.packLines()

	switch key {
	case "j", "down":
		if a.packCursor < len(lines)-1 {
			a.packCursor++
		}
		return true, a, nil
	case "k", "up":
		if a.packCursor > 0 {
			a.packCursor--
		}
		return true, a, nil
	case "g":
		a.packCursor = 0
		return true, a, nil
	case "G":
		a.packCursor = len(lines) - 1
		if a.packCursor < 0 {
			a.packCursor = 0
		}
		return true, a, nil
	case " ":
		if a.packCursor < len(lines) {
			l := lines[a.packCursor]
			if err := a.sess.ToggleItem(l.category, l.item); err != nil {
				a.flash = err.Error()
				a.flashErr = true
			}
		}
		return true, a, nil
	}
	return false, a, nil
}

func (a App) renderPackingTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	var b strings.Builder
	idx := 0
	for ci, cat := range a.trip.Packing.Categories {
		done := a.sess.CompletionCount(cat.Name)

		var body strings.Builder
		for ii, item := range cat.Items {
			if ii > 0 {
				body.WriteString("\n")
			}
			body.WriteString(components.Checkbox(
				item,
				a.sess.IsChecked(cat.Name, item),
				idx == a.packCursor,
				innerW,
			))
			idx++
		}

		title := fmt.Sprintf("%s  %d/%d", cat.Name, done, len(cat.Items))

		if ci > 0 {
			b.WriteString("\n")
		}
		b.WriteString(components.ContentCard(title, body.String(), cw))
	}

	if idx == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("This trip has no packing list.")
		return components.ContentCard("Packing", empty, cw)
	}

	return b.String()
}
