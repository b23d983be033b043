// Package service carries the write-side flows of the app: everything a
// screen does when the user presses a button. It validates first and
// writes second: a validation failure writes nothing, and a storage
// failure aborts the whole action.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tally/internal/core"
	"tally/internal/store"
)

// Ledger orchestrates user actions against the store.
type Ledger struct {
	store *store.Store
	clock func() time.Time
}

func NewLedger(st *store.Store) *Ledger {
	return &Ledger{store: st, clock: time.Now}
}

// WithClock replaces the time source, for tests.
func (l *Ledger) WithClock(clock func() time.Time) *Ledger {
	l.clock = clock
	return l
}

// Now returns the ledger's current time. Views compute period totals
// against the same clock that stamps new expenses.
func (l *Ledger) Now() time.Time {
	return l.clock()
}

// AddExpenseInput is the raw form input for a new expense. Amount stays
// a string until validation: parsing is the gate that rejects missing,
// non-numeric and non-positive values before anything is written.
type AddExpenseInput struct {
	Amount   string
	Category string
	Note     string
}

// AddExpense validates the input, stamps a new record and appends it to
// the stored list. The category must exist in the current set at
// creation time; it is never re-validated afterwards, so removing a
// category later leaves existing records untouched.
func (l *Ledger) AddExpense(ctx context.Context, in AddExpenseInput) (core.Expense, error) {
	cents, err := core.ParseDecimalToCents(in.Amount)
	if err != nil {
		return core.Expense{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return core.Expense{}, core.ErrEmptyCategory
	}

	categories, err := l.store.LoadCategories(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load categories: %w", err)
	}
	known := false
	for _, c := range categories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return core.Expense{}, core.ErrUnknownCategory
	}

	e := core.NewExpense(l.clock(), core.Money{Cents: cents}, category, in.Note)
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	if err := l.store.AppendExpense(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("append expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"amount_cents", e.Amount.Cents,
		"category", e.Category)
	return e, nil
}

// SetBudget parses and stores a new monthly budget, replacing the old
// one wholesale.
func (l *Ledger) SetBudget(ctx context.Context, raw string) (core.Money, error) {
	budget, err := core.ParseBudget(raw)
	if err != nil {
		return core.Money{}, err
	}
	if err := l.store.SaveBudget(ctx, budget); err != nil {
		return core.Money{}, fmt.Errorf("save budget: %w", err)
	}
	slog.InfoContext(ctx, "Budget updated", "cents", budget.Cents)
	return budget, nil
}

// AddCategory appends a category. Duplicates are not rejected, matching
// the mobile app's behavior.
func (l *Ledger) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.ErrEmptyCategoryName
	}
	categories, err := l.store.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	if err := l.store.SaveCategories(ctx, append(categories, name)); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	slog.InfoContext(ctx, "Category added", "category", name)
	return nil
}

// RemoveCategory removes a category by value. Expenses already filed
// under it are left alone: orphaned references stay valid and display
// unchanged.
func (l *Ledger) RemoveCategory(ctx context.Context, name string) error {
	categories, err := l.store.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	kept := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	if err := l.store.SaveCategories(ctx, kept); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	slog.InfoContext(ctx, "Category removed", "category", name)
	return nil
}

// ClearAll wipes the whole store.
func (l *Ledger) ClearAll(ctx context.Context) error {
	if err := l.store.Clear(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "All data cleared")
	return nil
}

// Snapshot loads a consistent read of the store.
func (l *Ledger) Snapshot(ctx context.Context) (store.Snapshot, error) {
	return l.store.LoadSnapshot(ctx)
}

// Changed reports whether the store moved past the given token.
func (l *Ledger) Changed(token uint64) bool {
	return l.store.Version() != token
}

// IsValidation reports whether err is a user-input problem rather than
// a storage failure. Validation errors are shown to the user verbatim;
// everything else gets logged and a generic notice.
func IsValidation(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrEmptyCategory) ||
		errors.Is(err, core.ErrUnknownCategory) ||
		errors.Is(err, core.ErrInvalidBudget) ||
		errors.Is(err, core.ErrEmptyCategoryName)
}
