// Package cli provides formatting and rendering utilities for terminal
// output, shared by the commands and the interactive UI.
package cli

import (
	"fmt"
	"time"

	"tally/internal/core"
)

// Currency is the symbol prefixed to every rendered amount.
const Currency = "₹"

// FormatMoney renders an amount the way the app displays it: no
// trailing zeros, so ₹150 rather than ₹150.00.
func FormatMoney(m core.Money) string {
	return Currency + m.DecimalString()
}

// FormatPercent renders a share of total spending with one decimal.
// e.g., 85.7 -> "85.7%"
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatDate renders a date the way expense groups are labelled.
// e.g., "Aug 30, 2025"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a full timestamp for detail rows.
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
