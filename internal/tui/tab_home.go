package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/aggregate"
	"tally/internal/cli"
)

// homeState tracks the Home tab: the active filter, search and sort
// settings, and list scrolling.
type homeState struct {
	categoryIdx int
	sort        string
	searching   bool
	searchInput textinput.Model
	search      string
	scroll      int
}

func newHomeState() homeState {
	return homeState{sort: aggregate.SortLatest}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search notes"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// filterCategories is the cycling order for the category filter: the
// pseudo-category "All" first, then the stored list.
func (a App) filterCategories() []string {
	return append([]string{aggregate.CategoryAll}, a.snap.Categories...)
}

func (a App) currentCategory() string {
	cats := a.filterCategories()
	idx := a.home.categoryIdx
	if idx < 0 || idx >= len(cats) {
		return aggregate.CategoryAll
	}
	return cats[idx]
}

func (a App) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and similar messages still drive the input.
		if a.home.searching {
			var cmd tea.Cmd
			a.home.searchInput, cmd = a.home.searchInput.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.home.searching {
		switch keyMsg.String() {
		case "enter":
			a.home.search = a.home.searchInput.Value()
			a.home.searching = false
			a.home.scroll = 0
			return a, nil
		case "esc":
			a.home.searching = false
			a.home.searchInput.SetValue(a.home.search)
			return a, nil
		case "ctrl+c":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.home.searchInput, cmd = a.home.searchInput.Update(msg)
		return a, cmd
	}

	switch keyMsg.String() {
	case "left":
		n := len(a.filterCategories())
		a.home.categoryIdx = (a.home.categoryIdx + n - 1) % n
		a.home.scroll = 0
	case "right":
		a.home.categoryIdx = (a.home.categoryIdx + 1) % len(a.filterCategories())
		a.home.scroll = 0
	case "o":
		if a.home.sort == aggregate.SortLatest {
			a.home.sort = aggregate.SortHighest
		} else {
			a.home.sort = aggregate.SortLatest
		}
		a.home.scroll = 0
	case "/":
		a.home.searching = true
		a.home.searchInput = newSearchInput()
		a.home.searchInput.SetValue(a.home.search)
		a.home.searchInput.Focus()
		return a, a.home.searchInput.Cursor.BlinkCmd()
	case "esc":
		if a.home.search != "" {
			a.home.search = ""
			a.home.scroll = 0
		}
	case "j", "down":
		a.home.scroll++
	case "k", "up":
		if a.home.scroll > 0 {
			a.home.scroll--
		}
	case "g":
		a.home.scroll = 0
	}
	return a, nil
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.ColorBorder).
			Padding(0, 2).
			Align(lipgloss.Center)

	cardLabelStyle = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
	cardValueStyle = lipgloss.NewStyle().Foreground(cli.ColorText).Bold(true)
	groupStyle     = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	noteStyle      = lipgloss.NewStyle().Foreground(cli.ColorTextDim).Italic(true)
)

func totalCard(label string, amount string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		cardLabelStyle.Render(label),
		cardValueStyle.Render(amount),
	))
}

func (a App) viewHome() string {
	totals := aggregate.ComputeTotals(a.snap.Expenses, a.ledger.Now())

	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		totalCard("Today", cli.FormatMoney(totals.Today)),
		" ",
		totalCard("This Week", cli.FormatMoney(totals.Week)),
		" ",
		totalCard("This Month", cli.FormatMoney(totals.Month)),
	))
	b.WriteString("\n\n")

	b.WriteString("  " + cli.RenderBudgetBar(totals.Month, a.snap.Budget, 30))
	b.WriteString("\n")
	if aggregate.BudgetExceeded(totals.Month, a.snap.Budget) {
		b.WriteString("  " + cli.RenderBudgetAlert(a.snap.Budget))
		b.WriteString("\n")
	}

	if shares := aggregate.Breakdown(a.snap.Expenses); len(shares) > 0 {
		b.WriteString("\n")
		b.WriteString(groupStyle.Render("  Spending by Category"))
		b.WriteString("\n")
		for _, s := range shares {
			b.WriteString(fmt.Sprintf("  %s: %s (%s)\n",
				s.Category, cli.FormatMoney(s.Amount), cli.FormatPercent(s.Percent)))
		}
	}

	b.WriteString("\n")
	b.WriteString(a.viewExpenseList())
	return b.String()
}

func (a App) viewExpenseList() string {
	var b strings.Builder

	filterLine := fmt.Sprintf("  Filter: %s   Sort: %s", a.currentCategory(), a.home.sort)
	if a.home.searching {
		filterLine += "   " + a.home.searchInput.View()
	} else if a.home.search != "" {
		filterLine += fmt.Sprintf("   Search: %q", a.home.search)
	}
	b.WriteString(dimStyle.Render(filterLine))
	b.WriteString("\n\n")

	view := aggregate.View(a.snap.Expenses, aggregate.ViewOptions{
		Category: a.currentCategory(),
		Search:   a.home.search,
		Sort:     a.home.sort,
	})
	if len(view) == 0 {
		b.WriteString(dimStyle.Render("  No expenses yet."))
		return b.String()
	}

	lines := make([]string, 0, len(view)*2)
	for _, group := range aggregate.GroupByDate(view, a.groupOrder) {
		lines = append(lines, groupStyle.Render("  "+group.Label))
		for _, e := range group.Expenses {
			row := fmt.Sprintf("    %-16s %10s", e.Category, cli.FormatMoney(e.Amount))
			if e.Note != "" {
				row += "  " + noteStyle.Render(e.Note)
			}
			lines = append(lines, row)
		}
	}

	// Simple scroll window over the rendered lines.
	visible := a.height - 18
	if visible < 4 {
		visible = 4
	}
	start := a.home.scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[start:end], "\n"))
	if end < len(lines) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more (j to scroll)", len(lines)-end)))
	}
	return b.String()
}
