package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"tally/internal/core"
)

// SchemaVersion is the current version of the expenses envelope.
const SchemaVersion = 1

// expenseEnvelope is the versioned on-disk form of the expense list. The
// mobile app wrote a bare JSON array; loads detect that legacy shape and
// migrate it in place.
type expenseEnvelope struct {
	Version  int            `json:"version"`
	Expenses []core.Expense `json:"expenses"`
}

// Snapshot is one consistent read of the whole store. Token identifies
// the store version the snapshot was taken at; consumers compare it
// against Version before trusting a cached snapshot.
type Snapshot struct {
	Expenses   []core.Expense
	Categories []string
	Budget     core.Money
	Token      uint64
}

// Store is the typed persistence layer over a KV backend. Every mutation
// bumps a version counter and wakes subscribers, so screens holding a
// stale snapshot know to reload instead of relying on refetch-on-focus.
type Store struct {
	kv            KV
	defaultBudget core.Money
	version       atomic.Uint64

	mu   sync.Mutex
	subs []chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultBudget overrides the budget seeded on first use and
// returned when no budget has been stored.
func WithDefaultBudget(m core.Money) Option {
	return func(s *Store) { s.defaultBudget = m }
}

func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, defaultBudget: core.DefaultBudget}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version returns the current invalidation token.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Subscribe returns a channel that receives a signal after every
// mutation. The channel is buffered and never blocks a writer; a slow
// reader coalesces bursts into one wakeup.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) bump() {
	s.version.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Initialize seeds defaults for keys that have never been written. It is
// safe to call on every startup: each seed is guarded by a presence
// check, so it runs exactly once per store lifetime.
func (s *Store) Initialize(ctx context.Context) error {
	if _, ok, err := s.kv.Get(ctx, KeyCategories); err != nil {
		return fmt.Errorf("check categories: %w", err)
	} else if !ok {
		if err := s.SaveCategories(ctx, core.DefaultCategories()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		slog.InfoContext(ctx, "Seeded default categories", "count", len(core.DefaultCategories()))
	}

	if _, ok, err := s.kv.Get(ctx, KeyBudget); err != nil {
		return fmt.Errorf("check budget: %w", err)
	} else if !ok {
		if err := s.SaveBudget(ctx, s.defaultBudget); err != nil {
			return fmt.Errorf("seed budget: %w", err)
		}
		slog.InfoContext(ctx, "Seeded default budget", "cents", s.defaultBudget.Cents)
	}
	return nil
}

// LoadExpenses reads the expense list, migrating a legacy bare-array
// blob to the versioned envelope on the way.
func (s *Store) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	raw, ok, err := s.kv.Get(ctx, KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("get expenses: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		// Pre-versioning format written by the mobile app.
		var legacy []core.Expense
		if err := json.Unmarshal([]byte(trimmed), &legacy); err != nil {
			return nil, fmt.Errorf("parse legacy expenses: %w", err)
		}
		if err := s.writeExpenses(ctx, legacy); err != nil {
			return nil, fmt.Errorf("migrate legacy expenses: %w", err)
		}
		slog.InfoContext(ctx, "Migrated legacy expense blob", "count", len(legacy), "schema_version", SchemaVersion)
		return legacy, nil
	}

	var env expenseEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, fmt.Errorf("parse expenses: %w", err)
	}
	if env.Version > SchemaVersion {
		return nil, fmt.Errorf("expenses schema version %d is newer than supported %d", env.Version, SchemaVersion)
	}
	return env.Expenses, nil
}

func (s *Store) writeExpenses(ctx context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.Marshal(expenseEnvelope{Version: SchemaVersion, Expenses: expenses})
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	return s.kv.Set(ctx, KeyExpenses, string(data))
}

// SaveExpenses replaces the stored expense list wholesale.
func (s *Store) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	if err := s.writeExpenses(ctx, expenses); err != nil {
		return err
	}
	s.bump()
	return nil
}

// AppendExpense loads, appends and rewrites the expense list.
func (s *Store) AppendExpense(ctx context.Context, e core.Expense) error {
	expenses, err := s.LoadExpenses(ctx)
	if err != nil {
		return err
	}
	return s.SaveExpenses(ctx, append(expenses, e))
}

// LoadCategories returns the stored category list, or the default set
// when nothing has been written yet.
func (s *Store) LoadCategories(ctx context.Context) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return core.DefaultCategories(), nil
	}
	var cats []string
	if err := json.Unmarshal([]byte(raw), &cats); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return cats, nil
}

func (s *Store) SaveCategories(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCategories, string(data)); err != nil {
		return fmt.Errorf("set categories: %w", err)
	}
	s.bump()
	return nil
}

// LoadBudget returns the stored monthly budget, or the default when
// nothing has been written yet.
func (s *Store) LoadBudget(ctx context.Context) (core.Money, error) {
	raw, ok, err := s.kv.Get(ctx, KeyBudget)
	if err != nil {
		return core.Money{}, fmt.Errorf("get budget: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return s.defaultBudget, nil
	}
	budget, err := core.ParseBudget(raw)
	if err != nil {
		return core.Money{}, fmt.Errorf("parse stored budget %q: %w", raw, err)
	}
	return budget, nil
}

// SaveBudget stores the budget as a string-encoded decimal, the format
// the mobile app used.
func (s *Store) SaveBudget(ctx context.Context, budget core.Money) error {
	if err := s.kv.Set(ctx, KeyBudget, budget.DecimalString()); err != nil {
		return fmt.Errorf("set budget: %w", err)
	}
	s.bump()
	return nil
}

// Clear wipes all three keys. The next read reseeds defaults.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	s.bump()
	return nil
}

// LoadSnapshot reads all three keys concurrently and returns one
// consistent view tagged with the current version token. On any error
// the caller keeps whatever snapshot it already had.
func (s *Store) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	token := s.Version()
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.LoadExpenses(gctx)
		if err != nil {
			return err
		}
		snap.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		cats, err := s.LoadCategories(gctx)
		if err != nil {
			return err
		}
		snap.Categories = cats
		return nil
	})
	g.Go(func() error {
		budget, err := s.LoadBudget(gctx)
		if err != nil {
			return err
		}
		snap.Budget = budget
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	snap.Token = token
	return snap, nil
}
