// Package tui provides the interactive Bubble Tea interface: a Home tab
// with totals and the expense list, an Add tab for recording expenses,
// and a Settings tab for budget and categories.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/aggregate"
	"tally/internal/cli"
	"tally/internal/service"
	"tally/internal/store"
)

// snapshotMsg carries a fresh read of the store.
type snapshotMsg struct {
	snap store.Snapshot
	err  error
}

// actionDoneMsg reports the outcome of a write action.
type actionDoneMsg struct {
	err error
}

// tickMsg drives the periodic staleness check.
type tickMsg time.Time

const refreshInterval = 2 * time.Second

var tabs = []string{"Home", "Add", "Settings"}

const (
	tabHome = iota
	tabAdd
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	ledger     *service.Ledger
	groupOrder aggregate.GroupOrder

	snap   store.Snapshot
	loaded bool
	err    error

	width     int
	height    int
	activeTab int

	home     homeState
	add      addState
	settings settingsState
}

// NewApp creates the root model.
func NewApp(ledger *service.Ledger, groupOrder aggregate.GroupOrder) App {
	return App{
		ledger:     ledger,
		groupOrder: groupOrder,
		home:       newHomeState(),
		settings:   newSettingsState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadSnapshot(), tickCmd())
}

func (a App) loadSnapshot() tea.Cmd {
	ledger := a.ledger
	return func() tea.Msg {
		snap, err := ledger.Snapshot(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.add.form != nil {
			a.add.form = a.add.form.WithWidth(msg.Width)
		}
		return a, nil

	case snapshotMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.snap = msg.snap
		a.loaded = true
		if a.add.form == nil {
			return a.rebuildAddForm()
		}
		return a, nil

	case tickMsg:
		// The snapshot token doubles as a staleness check: reload only
		// when some other writer moved the store forward.
		if a.loaded && a.ledger.Changed(a.snap.Token) {
			return a, tea.Batch(a.loadSnapshot(), tickCmd())
		}
		return a, tickCmd()

	case actionDoneMsg:
		if msg.err != nil && !service.IsValidation(msg.err) {
			a.err = msg.err
			return a, nil
		}
		a.flash(msg.err)
		return a, a.loadSnapshot()

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a.updateActiveTab(msg)
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// Modal states capture input before global keys apply.
	if a.capturing() {
		return a.updateActiveTab(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(tabs)
		return a.enterTab()
	case "shift+tab":
		a.activeTab = (a.activeTab + len(tabs) - 1) % len(tabs)
		return a.enterTab()
	case "1", "h":
		a.activeTab = tabHome
		return a.enterTab()
	case "2", "a":
		a.activeTab = tabAdd
		return a.enterTab()
	case "3", "s":
		a.activeTab = tabSettings
		return a.enterTab()
	}

	return a.updateActiveTab(msg)
}

// capturing reports whether the active tab holds a focused input that
// should see every keystroke.
func (a App) capturing() bool {
	switch a.activeTab {
	case tabHome:
		return a.home.searching
	case tabAdd:
		return a.add.form != nil
	case tabSettings:
		return a.settings.editing
	}
	return false
}

// enterTab refreshes the snapshot when focus lands on a tab, so each
// screen renders from current data.
func (a App) enterTab() (tea.Model, tea.Cmd) {
	if a.ledger.Changed(a.snap.Token) {
		return a, a.loadSnapshot()
	}
	return a, nil
}

func (a App) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabHome:
		return a.updateHome(msg)
	case tabAdd:
		return a.updateAdd(msg)
	case tabSettings:
		return a.updateSettings(msg)
	}
	return a, nil
}

// flash records a short status line for the active tab after an action.
func (a *App) flash(err error) {
	switch a.activeTab {
	case tabAdd:
		a.add.lastErr = err
		a.add.done = err == nil
	case tabSettings:
		a.settings.lastErr = err
		a.settings.saved = err == nil
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.err != nil {
		return errStyle.Render("Error: " + a.err.Error() + "\n\nPress q to quit.")
	}
	if !a.loaded {
		return dimStyle.Render("  Loading...")
	}

	var body string
	switch a.activeTab {
	case tabHome:
		body = a.viewHome()
	case tabAdd:
		body = a.viewAdd()
	case tabSettings:
		body = a.viewSettings()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabBar(a.activeTab, a.width),
		"",
		body,
		"",
		statusBar(a.activeTab),
	)
}

var (
	dimStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
	errStyle    = lipgloss.NewStyle().Foreground(cli.ColorRed).Bold(true)
	activeTabSt = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	tabStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
	okStyle     = lipgloss.NewStyle().Foreground(cli.ColorGreen)
)

func renderTabBar(active, width int) string {
	parts := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == active {
			parts = append(parts, activeTabSt.Render(" "+name+" "))
		} else {
			parts = append(parts, tabStyle.Render(" "+name+" "))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	rule := dimStyle.Render(strings.Repeat("─", max(width, 0)))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}

func statusBar(active int) string {
	switch active {
	case tabHome:
		return dimStyle.Render("  ←/→ category  o sort  / search  tab switch  q quit")
	case tabAdd:
		return dimStyle.Render("  enter next field  esc back to Home  ctrl+c quit")
	default:
		return dimStyle.Render("  j/k move  enter edit  b budget  n new  d delete  C clear all  q quit")
	}
}
