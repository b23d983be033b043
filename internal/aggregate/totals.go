// Package aggregate computes the read-side views of the ledger: time
// bucketed totals, the budget flag, per-category breakdowns and the
// filtered, sorted, date-grouped list the UI renders. Every function is
// pure and operates on a snapshot passed in by the caller; nothing here
// touches storage or holds state between calls.
package aggregate

import (
	"time"

	"tally/internal/core"
)

// week is a rolling window, not a calendar week.
const week = 7 * 24 * time.Hour

// Totals holds the three overlapping time-bucket sums. A single expense
// can contribute to all of them at once: the buckets are independent
// sums, not a partition.
type Totals struct {
	Today core.Money
	Week  core.Money
	Month core.Money
}

// ComputeTotals classifies every expense against now.
//
// Today is a calendar-day match, Month a calendar-month match. Week is
// continuous: now minus the expense date strictly under seven days, so an
// entry exactly 7.0 days old falls out while a future-dated entry (a
// negative difference) stays in, as the mobile app had it.
func ComputeTotals(expenses []core.Expense, now time.Time) Totals {
	var t Totals
	for _, e := range expenses {
		if core.SameDay(now, e.Date) {
			t.Today.Cents += e.Amount.Cents
		}
		if now.Sub(e.Date) < week {
			t.Week.Cents += e.Amount.Cents
		}
		if core.SameMonth(now, e.Date) {
			t.Month.Cents += e.Amount.Cents
		}
	}
	return t
}

// BudgetExceeded reports whether the month bucket strictly exceeds the
// budget. Spending exactly the budget does not trip the flag.
func BudgetExceeded(monthTotal, budget core.Money) bool {
	return monthTotal.Cents > budget.Cents
}
