package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/aggregate"
	"tally/internal/service"
	"tally/internal/store"
	"tally/internal/store/memkv"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	ctx := context.Background()
	st := store.New(memkv.New())
	require.NoError(t, st.Initialize(ctx))
	fixed := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	ledger := service.NewLedger(st).WithClock(func() time.Time { return fixed })
	return NewApp(ledger, aggregate.OrderTraversal)
}

func loadedApp(t *testing.T) App {
	t.Helper()
	a := newTestApp(t)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)

	snap, err := a.ledger.Snapshot(context.Background())
	require.NoError(t, err)
	m, _ = a.Update(snapshotMsg{snap: snap})
	return m.(App)
}

func TestViewBeforeLoad(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "", a.View(), "no size yet means no output")

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)
	assert.Contains(t, a.View(), "Loading")
}

func TestHomeViewShowsTotalsAndList(t *testing.T) {
	a := loadedApp(t)

	_, err := a.ledger.AddExpense(context.Background(), service.AddExpenseInput{
		Amount: "150", Category: "🍔 Food", Note: "lunch",
	})
	require.NoError(t, err)

	snap, err := a.ledger.Snapshot(context.Background())
	require.NoError(t, err)
	m, _ := a.Update(snapshotMsg{snap: snap})
	a = m.(App)

	view := a.View()
	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "₹150")
	assert.Contains(t, view, "Aug 31, 2025")
	assert.Contains(t, view, "lunch")
	assert.Contains(t, view, "100.0%")
}

func TestTabSwitching(t *testing.T) {
	a := loadedApp(t)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	a = m.(App)
	assert.Equal(t, tabSettings, a.activeTab)
	assert.Contains(t, a.View(), "Monthly Budget")

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	a = m.(App)
	assert.Equal(t, tabAdd, a.activeTab)

	// The add form owns tab and shift+tab; esc returns to Home.
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	assert.Equal(t, tabHome, a.activeTab)
}

func TestHomeFilterCycling(t *testing.T) {
	a := loadedApp(t)

	assert.Equal(t, aggregate.CategoryAll, a.currentCategory())

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	assert.Equal(t, "🍔 Food", a.currentCategory())

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a = m.(App)
	assert.Equal(t, aggregate.CategoryAll, a.currentCategory())

	// Wrap backwards onto the last stored category.
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a = m.(App)
	assert.Equal(t, "📌 Other", a.currentCategory())
}

func TestHomeSortToggle(t *testing.T) {
	a := loadedApp(t)
	assert.Equal(t, aggregate.SortLatest, a.home.sort)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	a = m.(App)
	assert.Equal(t, aggregate.SortHighest, a.home.sort)
}

func TestSettingsDeleteCategory(t *testing.T) {
	a := loadedApp(t)
	a.activeTab = tabSettings

	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	a = m.(App)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(actionDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	snap, err := a.ledger.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, snap.Categories, "🍔 Food")
}

func TestQuitKeys(t *testing.T) {
	a := loadedApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestStatusBarMentionsKeys(t *testing.T) {
	a := loadedApp(t)
	if !strings.Contains(a.View(), "search") {
		t.Error("home status bar should mention search")
	}
}
