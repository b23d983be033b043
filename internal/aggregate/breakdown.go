package aggregate

import (
	"math"

	"tally/internal/core"
)

// CategoryShare is one category's slice of total spending.
type CategoryShare struct {
	Category string
	Amount   core.Money
	Percent  float64 // share of total spending, rounded to one decimal
}

// Breakdown groups all expenses by category and sums each group.
// Categories appear in order of first appearance in the input, not
// sorted. An empty ledger yields a nil slice; callers render their
// "no expenses" state instead of a chart.
func Breakdown(expenses []core.Expense) []CategoryShare {
	if len(expenses) == 0 {
		return nil
	}

	index := make(map[string]int, len(expenses))
	shares := make([]CategoryShare, 0, 8)
	var total int64
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(shares)
			index[e.Category] = i
			shares = append(shares, CategoryShare{Category: e.Category})
		}
		shares[i].Amount.Cents += e.Amount.Cents
		total += e.Amount.Cents
	}
	if total == 0 {
		return nil
	}

	for i := range shares {
		pct := float64(shares[i].Amount.Cents) / float64(total) * 100
		shares[i].Percent = math.Round(pct*10) / 10
	}
	return shares
}

// TotalSpending sums every expense regardless of date or category.
func TotalSpending(expenses []core.Expense) core.Money {
	var total core.Money
	for _, e := range expenses {
		total.Cents += e.Amount.Cents
	}
	return total
}
