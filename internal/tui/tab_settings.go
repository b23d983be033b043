package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/cli"
)

// Settings edit modes. The cursor walks the category list; edit mode
// decides what the text input writes to.
const (
	editNone = iota
	editBudget
	editNewCategory
	confirmClear
)

// settingsState tracks the Settings tab.
type settingsState struct {
	cursor  int
	editing bool
	mode    int
	input   textinput.Model
	saved   bool
	lastErr error
}

func newSettingsState() settingsState {
	return settingsState{}
}

func newSettingsInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(value)
	ti.Focus()
	return ti
}

func (a App) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if a.settings.editing && a.settings.mode != confirmClear {
			var cmd tea.Cmd
			a.settings.input, cmd = a.settings.input.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	key := keyMsg.String()

	if a.settings.editing {
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.settings.editing = false
			a.settings.mode = editNone
			return a, nil
		case "enter":
			return a.settingsCommit()
		}
		if a.settings.mode == confirmClear {
			// Only y confirms; anything else cancels.
			a.settings.editing = false
			if key == "y" {
				ledger := a.ledger
				return a, func() tea.Msg {
					return actionDoneMsg{err: ledger.ClearAll(context.Background())}
				}
			}
			a.settings.mode = editNone
			return a, nil
		}
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	switch key {
	case "j", "down":
		if a.settings.cursor < len(a.snap.Categories)-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "b":
		a.settings.editing = true
		a.settings.saved = false
		a.settings.mode = editBudget
		a.settings.input = newSettingsInput("monthly budget", a.snap.Budget.DecimalString())
		return a, a.settings.input.Cursor.BlinkCmd()
	case "n":
		a.settings.editing = true
		a.settings.saved = false
		a.settings.mode = editNewCategory
		a.settings.input = newSettingsInput("e.g. 🎮 Games", "")
		return a, a.settings.input.Cursor.BlinkCmd()
	case "d":
		if a.settings.cursor < len(a.snap.Categories) {
			name := a.snap.Categories[a.settings.cursor]
			ledger := a.ledger
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, func() tea.Msg {
				return actionDoneMsg{err: ledger.RemoveCategory(context.Background(), name)}
			}
		}
	case "C":
		a.settings.editing = true
		a.settings.saved = false
		a.settings.mode = confirmClear
	}
	return a, nil
}

func (a App) settingsCommit() (tea.Model, tea.Cmd) {
	mode := a.settings.mode
	value := a.settings.input.Value()
	ledger := a.ledger

	a.settings.editing = false
	a.settings.mode = editNone

	switch mode {
	case editBudget:
		return a, func() tea.Msg {
			_, err := ledger.SetBudget(context.Background(), value)
			return actionDoneMsg{err: err}
		}
	case editNewCategory:
		return a, func() tea.Msg {
			return actionDoneMsg{err: ledger.AddCategory(context.Background(), value)}
		}
	case confirmClear:
		a.settings.mode = confirmClear
		a.settings.editing = true
	}
	return a, nil
}

func (a App) viewSettings() string {
	var b strings.Builder

	b.WriteString(groupStyle.Render("  Settings"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Monthly Budget: %s\n", cli.FormatMoney(a.snap.Budget)))
	if a.settings.editing && a.settings.mode == editBudget {
		b.WriteString("  " + a.settings.input.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(groupStyle.Render("  Categories"))
	b.WriteString("\n")
	for i, c := range a.snap.Categories {
		marker := "  "
		if i == a.settings.cursor && !a.settings.editing {
			marker = dimStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", marker, c))
	}
	if a.settings.editing && a.settings.mode == editNewCategory {
		b.WriteString("  " + a.settings.input.View() + "\n")
	}

	if a.settings.editing && a.settings.mode == confirmClear {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  Delete ALL expenses, categories and the budget? (y/n)"))
		b.WriteString("\n")
	}

	if a.settings.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + a.settings.lastErr.Error()))
	} else if a.settings.saved {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("  Saved."))
	}
	return b.String()
}
