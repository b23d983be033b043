package aggregate

import (
	"testing"
	"time"

	"tally/internal/core"
)

func exp(id string, cents int64, category, note string, date time.Time) core.Expense {
	return core.Expense{
		ID:       id,
		Amount:   core.Money{Cents: cents},
		Category: category,
		Note:     note,
		Date:     date,
	}
}

func TestComputeTotalsBuckets(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	expenses := []core.Expense{
		exp("1", 100_00, "🍔 Food", "", now),                      // today, week, month
		exp("2", 200_00, "🍔 Food", "", now.Add(-7*24*time.Hour)), // exactly 7 days: out of week; same month
		exp("3", 50_00, "🚌 Transport", "", now),                  // today, week, month
	}

	got := ComputeTotals(expenses, now)
	if got.Today.Cents != 150_00 {
		t.Fatalf("today: expected 15000, got %d", got.Today.Cents)
	}
	if got.Week.Cents != 150_00 {
		t.Fatalf("week must exclude the exactly-7-day-old entry: expected 15000, got %d", got.Week.Cents)
	}
	if got.Month.Cents != 350_00 {
		t.Fatalf("month: expected 35000, got %d", got.Month.Cents)
	}
}

func TestComputeTotalsWeekBoundary(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		date   time.Time
		inWeek bool
	}{
		{"just under seven days", now.Add(-7*24*time.Hour + time.Second), true},
		{"exactly seven days", now.Add(-7 * 24 * time.Hour), false},
		{"over seven days", now.Add(-7*24*time.Hour - time.Second), false},
		{"future dated", now.Add(48 * time.Hour), true}, // negative difference stays under the window
	}
	for _, tc := range cases {
		got := ComputeTotals([]core.Expense{exp("1", 100, "x", "", tc.date)}, now)
		if (got.Week.Cents > 0) != tc.inWeek {
			t.Fatalf("%s: inWeek expected %v", tc.name, tc.inWeek)
		}
	}
}

// Every expense counted today must also be counted in the week and month
// buckets: same calendar day implies both a sub-seven-day difference and
// the same calendar month.
func TestTodayBucketSubsetOfWeekAndMonth(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC) // just past a month boundary
	dates := []time.Time{
		now,
		now.Add(-20 * time.Minute),
		now.Add(23 * time.Hour),               // later today
		now.Add(-3 * time.Hour),               // yesterday, last month
		now.AddDate(0, 0, -10),                // out of week, out of month
		time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC), // same month, future
	}
	for i, d := range dates {
		single := []core.Expense{exp("1", 100, "x", "", d)}
		got := ComputeTotals(single, now)
		if got.Today.Cents > 0 {
			if got.Week.Cents == 0 {
				t.Fatalf("date %d: today bucket without week bucket", i)
			}
			if got.Month.Cents == 0 {
				t.Fatalf("date %d: today bucket without month bucket", i)
			}
		}
	}
}

func TestBudgetExceeded(t *testing.T) {
	cases := []struct {
		month, budget int64
		want          bool
	}{
		{12_000_00, 10_000_00, true},
		{8_000_00, 10_000_00, false},
		{10_000_00, 10_000_00, false}, // strict inequality
	}
	for _, tc := range cases {
		got := BudgetExceeded(core.Money{Cents: tc.month}, core.Money{Cents: tc.budget})
		if got != tc.want {
			t.Fatalf("month=%d budget=%d: expected %v", tc.month, tc.budget, tc.want)
		}
	}
}
