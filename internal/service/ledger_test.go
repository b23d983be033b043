package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core"
	"tally/internal/store"
	"tally/internal/store/memkv"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ctx := context.Background()
	st := store.New(memkv.New())
	require.NoError(t, st.Initialize(ctx))
	fixed := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	return NewLedger(st).WithClock(func() time.Time { return fixed })
}

func TestAddExpense(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	e, err := l.AddExpense(ctx, AddExpenseInput{Amount: "12.34", Category: "🍔 Food", Note: " lunch "})
	require.NoError(t, err)
	assert.Equal(t, "1756641600000", e.ID)
	assert.Equal(t, int64(1234), e.Amount.Cents)
	assert.Equal(t, "lunch", e.Note)

	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, e.ID, snap.Expenses[0].ID)
}

func TestAddExpenseValidation(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	tests := []struct {
		name  string
		input AddExpenseInput
		want  error
	}{
		{"missing amount", AddExpenseInput{Amount: "", Category: "🍔 Food"}, core.ErrInvalidAmount},
		{"non-numeric amount", AddExpenseInput{Amount: "abc", Category: "🍔 Food"}, core.ErrInvalidAmount},
		{"zero amount", AddExpenseInput{Amount: "0", Category: "🍔 Food"}, core.ErrInvalidAmount},
		{"negative amount", AddExpenseInput{Amount: "-5", Category: "🍔 Food"}, core.ErrInvalidAmount},
		{"missing category", AddExpenseInput{Amount: "5", Category: "  "}, core.ErrEmptyCategory},
		{"unknown category", AddExpenseInput{Amount: "5", Category: "🎩 Hats"}, core.ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.AddExpense(ctx, tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidation(err))
		})
	}

	// Nothing was written by any of the rejected inputs.
	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Expenses)
}

func TestSetBudget(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	budget, err := l.SetBudget(ctx, "2500.50")
	require.NoError(t, err)
	assert.Equal(t, int64(250050), budget.Cents)

	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, budget, snap.Budget)

	_, err = l.SetBudget(ctx, "-1")
	require.ErrorIs(t, err, core.ErrInvalidBudget)
	_, err = l.SetBudget(ctx, "lots")
	require.ErrorIs(t, err, core.ErrInvalidBudget)
}

func TestCategoryManagement(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	require.NoError(t, l.AddCategory(ctx, " 🎮 Games "))
	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, append(core.DefaultCategories(), "🎮 Games"), snap.Categories)

	// Duplicates are allowed.
	require.NoError(t, l.AddCategory(ctx, "🎮 Games"))
	snap, err = l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Categories, len(core.DefaultCategories())+2)

	err = l.AddCategory(ctx, "   ")
	require.ErrorIs(t, err, core.ErrEmptyCategoryName)
}

func TestRemoveCategoryLeavesExpensesAlone(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	_, err := l.AddExpense(ctx, AddExpenseInput{Amount: "10", Category: "🚌 Transport"})
	require.NoError(t, err)

	require.NoError(t, l.RemoveCategory(ctx, "🚌 Transport"))

	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotContains(t, snap.Categories, "🚌 Transport")
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, "🚌 Transport", snap.Expenses[0].Category)

	// The category is gone, so new expenses can no longer use it.
	_, err = l.AddExpense(ctx, AddExpenseInput{Amount: "10", Category: "🚌 Transport"})
	require.ErrorIs(t, err, core.ErrUnknownCategory)

	// Removing a name that is not there is a no-op.
	require.NoError(t, l.RemoveCategory(ctx, "🎩 Hats"))
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	_, err := l.AddExpense(ctx, AddExpenseInput{Amount: "10", Category: "🍔 Food"})
	require.NoError(t, err)
	_, err = l.SetBudget(ctx, "5000")
	require.NoError(t, err)

	require.NoError(t, l.ClearAll(ctx))

	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Expenses)
	assert.Equal(t, core.DefaultBudget, snap.Budget)
	assert.Equal(t, core.DefaultCategories(), snap.Categories)
}

func TestChanged(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)

	snap, err := l.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, l.Changed(snap.Token))

	_, err = l.AddExpense(ctx, AddExpenseInput{Amount: "1", Category: "🍔 Food"})
	require.NoError(t, err)
	assert.True(t, l.Changed(snap.Token))
}
