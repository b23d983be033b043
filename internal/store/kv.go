// Package store persists the ledger to an on-device key-value store.
// Three keys hold everything: the expense list, the category list and
// the monthly budget. The KV port abstracts the actual device storage;
// Store layers JSON codecs, default seeding, schema migration and change
// notification on top of it.
package store

import "context"

// Storage keys. The names are part of the persisted format and must not
// change: existing devices hold data under them.
const (
	KeyExpenses   = "expenses"
	KeyCategories = "categories"
	KeyBudget     = "monthlyBudget"
)

// KV is the abstract key-value port. Implementations must treat Clear as
// atomic from the caller's point of view: no partially-cleared state may
// ever be observable.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
}
