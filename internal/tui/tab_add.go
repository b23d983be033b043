package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tally/internal/core"
	"tally/internal/service"
)

// addState holds the Add tab form and its last outcome. values lives on
// the heap: the form binds pointers into it, and the model is copied by
// value on every update.
type addState struct {
	form    *huh.Form
	values  *addValues
	done    bool
	lastErr error
}

type addValues struct {
	amount   string
	category string
	note     string
}

func newAddForm(categories []string, vals *addValues) *huh.Form {
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(func(s string) error {
					_, err := core.ParseDecimalToCents(s)
					return err
				}).
				Value(&vals.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&vals.category),
			huh.NewInput().
				Title("Note (optional)").
				Value(&vals.note),
		),
	).WithShowHelp(false)
}

// rebuildAddForm resets the form against the current category list.
func (a App) rebuildAddForm() (tea.Model, tea.Cmd) {
	a.add.values = &addValues{}
	a.add.form = newAddForm(a.snap.Categories, a.add.values)
	if a.width > 0 {
		a.add.form = a.add.form.WithWidth(a.width)
	}
	return a, a.add.form.Init()
}

func (a App) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.add.form == nil {
		return a.rebuildAddForm()
	}

	// The form owns tab and shift+tab for field navigation, so esc is
	// the way out of this screen.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		a.activeTab = tabHome
		return a.rebuildAddForm()
	}

	form, cmd := a.add.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.add.form = f
	}

	if a.add.form.State == huh.StateCompleted {
		input := service.AddExpenseInput{
			Amount:   a.add.values.amount,
			Category: a.add.values.category,
			Note:     a.add.values.note,
		}
		ledger := a.ledger
		model, rebuildCmd := a.rebuildAddForm()
		return model, tea.Batch(rebuildCmd, func() tea.Msg {
			_, err := ledger.AddExpense(context.Background(), input)
			return actionDoneMsg{err: err}
		})
	}
	if a.add.form.State == huh.StateAborted {
		return a.rebuildAddForm()
	}

	return a, cmd
}

func (a App) viewAdd() string {
	var b strings.Builder
	b.WriteString(groupStyle.Render("  Add Expense"))
	b.WriteString("\n\n")

	if len(a.snap.Categories) == 0 {
		b.WriteString(dimStyle.Render("  No categories defined. Add one in Settings first."))
		return b.String()
	}

	if a.add.form != nil {
		b.WriteString(a.add.form.View())
	}
	if a.add.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + a.add.lastErr.Error()))
	} else if a.add.done {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("  Expense saved."))
	}
	return b.String()
}
