package aggregate

import (
	"sort"
	"strings"

	"tally/internal/core"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Sort modes understood by View. Any other value leaves the input order
// untouched.
const (
	SortLatest  = "latest"
	SortHighest = "highest"
)

// GroupOrder controls how GroupByDate orders the date groups.
type GroupOrder string

const (
	// OrderTraversal keeps groups in the order their dates are first
	// encountered in the already-sorted input. Under SortHighest this
	// follows the amount sort rather than the calendar, which matches
	// the mobile app's observable behavior.
	OrderTraversal GroupOrder = "traversal"
	// OrderChronological orders groups by calendar day, newest first,
	// regardless of sort mode.
	OrderChronological GroupOrder = "chronological"
)

// Valid reports whether o is a known policy.
func (o GroupOrder) Valid() bool {
	return o == OrderTraversal || o == OrderChronological
}

// ViewOptions are the filter and sort criteria for one render pass.
type ViewOptions struct {
	Category string // CategoryAll or an exact category label
	Search   string // case-insensitive substring match against notes
	Sort     string // SortLatest, SortHighest, or anything for no-op
}

// View returns a fresh, filtered, sorted copy of the snapshot. It never
// mutates its input and is idempotent for identical options: the whole
// view is recomputed on every call rather than updated incrementally.
func View(expenses []core.Expense, opts ViewOptions) []core.Expense {
	search := strings.ToLower(opts.Search)
	out := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		if opts.Category != CategoryAll && opts.Category != "" && e.Category != opts.Category {
			continue
		}
		if !strings.Contains(strings.ToLower(e.Note), search) {
			continue
		}
		out = append(out, e)
	}

	switch opts.Sort {
	case SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.Cents > out[j].Amount.Cents
		})
	}
	return out
}

// DateGroup is one date header plus the expenses under it.
type DateGroup struct {
	Label    string
	Expenses []core.Expense
}

// dateLabel is the calendar-day key used for grouping.
func dateLabel(e core.Expense) string {
	return e.Date.Format("Jan 2, 2006")
}

// GroupByDate buckets an already-filtered, already-sorted view by
// calendar day. With OrderTraversal the groups keep the order in which
// distinct days first appear in the input; with OrderChronological they
// are reordered newest-day-first. Records inside a group always keep
// their view order.
func GroupByDate(view []core.Expense, order GroupOrder) []DateGroup {
	index := make(map[string]int, len(view))
	groups := make([]DateGroup, 0, 8)
	for _, e := range view {
		label := dateLabel(e)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
	}

	if order == OrderChronological {
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Expenses[0].Date.After(groups[j].Expenses[0].Date)
		})
	}
	return groups
}
