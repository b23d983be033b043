package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tally/internal/core"
)

// Theme colors
var (
	ColorBorder  = lipgloss.Color("#282726")
	ColorTextDim = lipgloss.Color("#575653")
	ColorText    = lipgloss.Color("#FFFCF0")
	ColorAccent  = lipgloss.Color("#3AA99F")
	ColorGreen   = lipgloss.Color("#879A39")
	ColorRed     = lipgloss.Color("#D14D41")
	ColorYellow  = lipgloss.Color("#D0A215")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)
)

// Table is a bordered two-or-more column text table. A row consisting of
// the single cell "---" renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(46).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderBudgetAlert renders the over-budget warning line.
func RenderBudgetAlert(budget core.Money) string {
	return alertStyle.Render(fmt.Sprintf("⚠️ You have exceeded your monthly budget of %s!", FormatMoney(budget)))
}

// RenderTable renders a bordered table. The first column is
// left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			continue
		}
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], true)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")
	return b.String()
}

// pad sizes a cell by display width, which keeps emoji-labelled
// categories aligned where fmt's %*s would not.
func pad(cell string, width int, leftAlign bool) string {
	gap := width - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if leftAlign {
		return " " + cell + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + cell + " "
}

// RenderBudgetBar renders month-to-date spending against the budget as
// a colored bar. Green under 80%, yellow to 100%, red past it.
func RenderBudgetBar(spent, budget core.Money, width int) string {
	if budget.Cents <= 0 || width <= 0 {
		return ""
	}

	ratio := float64(spent.Cents) / float64(budget.Cents)
	fill := ratio
	if fill > 1 {
		fill = 1
	}
	filled := int(fill * float64(width))

	color := ColorGreen
	switch {
	case ratio > 1:
		color = ColorRed
	case ratio >= 0.8:
		color = ColorYellow
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s / %s", bar, FormatMoney(spent), FormatMoney(budget))
}
