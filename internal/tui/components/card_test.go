package components

import (
	"strings"
	"testing"

	"tripdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("short card (%d lines) should be shorter than tall card (%d lines)", shortLines, tallLines)
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d lines, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestCardRowUnevenWidths(t *testing.T) {
	theme.SetActive("flexoki-dark")

	left := ContentCard("Route", "A\nB\nC\nD\nE\nF", 20)
	right := ContentCard("Budget", "A", 30)

	joined := CardRow([]string{left, right})
	leftLines := len(strings.Split(left, "\n"))
	if got := len(strings.Split(joined, "\n")); got != leftLines {
		t.Fatalf("joined height = %d lines, want %d", got, leftLines)
	}
	if CardRow(nil) != "" {
		t.Fatal("CardRow(nil) should render nothing")
	}
}

func TestHBarChartScalesToPeak(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := HBarChart([]string{"fuel", "food", "fun"}, []float64{300, 150, 0}, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("chart = %d lines, want 3", len(lines))
	}

	fuel := strings.Count(lines[0], "▇")
	food := strings.Count(lines[1], "▇")
	fun := strings.Count(lines[2], "▇")
	if fuel <= food {
		t.Fatalf("peak bar = %d cells, want longer than %d", fuel, food)
	}
	if fun != 0 {
		t.Fatalf("zero-value bar = %d cells, want 0", fun)
	}

	if got := HBarChart(nil, nil, 40); got != "" {
		t.Fatalf("empty chart = %q, want empty", got)
	}
}
