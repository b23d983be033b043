package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

type (
	Money struct {
		Cents int64
	}

	// Expense is a single spending event. Records are immutable once
	// created; the only bulk mutation is a full store clear.
	Expense struct {
		ID       string    `json:"id"`
		Amount   Money     `json:"amount"`
		Category string    `json:"category"`
		Note     string    `json:"note"`
		Date     time.Time `json:"date"`
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyCategory     = errors.New("empty category")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrInvalidBudget     = errors.New("invalid budget")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// DefaultBudget is the monthly budget before the user sets one.
var DefaultBudget = Money{Cents: 10_000_00}

// DefaultCategories returns the seed category set written on first use.
func DefaultCategories() []string {
	return []string{"🍔 Food", "🚌 Transport", "🛍️ Shopping", "💡 Bills", "📌 Other"}
}

// NewID derives an expense ID from the creation instant. IDs are
// monotonic in practice but carry no uniqueness guarantee.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// NewExpense builds an expense stamped with the given creation time.
func NewExpense(now time.Time, amount Money, category, note string) Expense {
	return Expense{
		ID:       NewID(now),
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(note),
		Date:     now,
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two instants fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}
