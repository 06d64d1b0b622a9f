// Package tui provides the interactive Bubble Tea dashboard for tripdash.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tripdash/internal/config"
	"tripdash/internal/media"
	"tripdash/internal/model"
	"tripdash/internal/session"
	"tripdash/internal/tui/components"
	"tripdash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. It owns the trip session and routes
// every key press through a single Update loop, so facet mutations never
// race each other.
type App struct {
	sess  *session.Session
	store *media.Store
	trip  *model.Trip
	cfg   config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	now       time.Time

	// Transient status line, cleared on the next keypress
	flash    string
	flashErr bool

	// Per-tab state
	phaseCursor int
	packCursor  int
	photos      photosState
	settings    settingsState

	// Add-expense form (huh), shown over the expenses tab
	expenseForm *huh.Form
	expenseVals expenseValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the dashboard model. The session is owned by the caller
// until the program exits; Close it after tea.Program returns.
func NewApp(sess *session.Session, store *media.Store, cfg config.Config) App {
	a := App{
		sess:      sess,
		store:     store,
		trip:      sess.Trip(),
		cfg:       cfg,
		now:       time.Now(),
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = defaultSetupValues(cfg)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// departure returns the countdown target: the config override when set,
// otherwise the trip's start date.
func (a App) departure() time.Time {
	if a.cfg.Countdown.Departure != nil {
		return *a.cfg.Countdown.Departure
	}
	return a.trip.StartDate
}

// expenseCategories lists the selectable ledger categories: every budgeted
// category plus a catch-all.
func (a App) expenseCategories() []string {
	cats := make([]string, 0, len(a.trip.Budget)+1)
	for c := range a.trip.Budget {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return append(cats, "other")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		return a, tickCmd()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Add-expense form intercepts all keys while open
		if a.expenseForm != nil {
			return a.updateExpenseForm(msg)
		}

		// Photo attach prompt (text input)
		if a.photos.attaching {
			return a.updateAttachInput(msg)
		}

		// Settings tab inline editing
		if a.activeTab == components.TabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		a.flash = ""
		a.flashErr = false

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		if key == "q" {
			return a, tea.Quit
		}

		// Per-tab keybindings take priority over tab shortcuts
		switch a.activeTab {
		case components.TabPhases:
			if handled, m, cmd := a.updatePhasesTab(key); handled {
				return m, cmd
			}
		case components.TabExpenses:
			if handled, m, cmd := a.updateExpensesTab(key); handled {
				return m, cmd
			}
		case components.TabPacking:
			if handled, m, cmd := a.updatePackingTab(key); handled {
				return m, cmd
			}
		case components.TabPhotos:
			if handled, m, cmd := a.updatePhotosTab(key); handled {
				return m, cmd
			}
		case components.TabSettings:
			if handled, m, cmd := a.updateSettingsTab(key); handled {
				return m, cmd
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.expenseForm != nil {
		return a.updateExpenseForm(msg)
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripdash needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o p e k f c x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"[ ]", "Switch phase (Photos)"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Space", "Toggle phase / packing item"},
		{"a", "Add expense / Attach photo"},
		{"d", "Detach selected photo"},
		{"Enter", "Edit setting / Confirm"},
		{"Esc", "Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"

	hints := "[?]help  [q]uit"
	switch a.activeTab {
	case components.TabPhases, components.TabPacking:
		hints = "[j/k]move  [space]toggle  [?]help  [q]uit"
	case components.TabExpenses:
		hints = "[a]dd expense  [?]help  [q]uit"
	case components.TabPhotos:
		hints = "[a]ttach  [d]etach  [j/k]select  [?]help  [q]uit"
	case components.TabSettings:
		hints = "[j/k]move  [enter]edit  [?]help  [q]uit"
	}

	context := a.trip.Name
	if a.flash != "" {
		style := lipgloss.NewStyle().Foreground(t.Green)
		if a.flashErr {
			style = lipgloss.NewStyle().Foreground(t.Red)
		}
		context = style.Render(a.flash)
	}
	statusBar := components.RenderStatusBar(w, hints, context)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case components.TabOverview:
		content = a.renderOverviewTab(cw)
	case components.TabPhases:
		content = a.renderPhasesTab(cw)
	case components.TabExpenses:
		content = a.renderExpensesTab(cw)
	case components.TabPacking:
		content = a.renderPackingTab(cw)
	case components.TabPhotos:
		content = a.renderPhotosTab(cw)
	case components.TabCountdown:
		content = a.renderCountdownTab(cw, contentH)
	case components.TabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg time.Time

// tickCmd drives the countdown clock.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
