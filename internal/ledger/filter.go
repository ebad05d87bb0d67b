package ledger

import (
	"fmt"
	"sort"
	"time"
)

// TypeFilter restricts a listing to one transaction type.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// ParseTypeFilter maps the empty string to FilterAll.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome, FilterExpense:
		return TypeFilter(s), nil
	default:
		return "", fmt.Errorf("unknown type filter %q", s)
	}
}

// SortOrder selects the ordering of a listing.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortHighest SortOrder = "highest"
	SortLowest  SortOrder = "lowest"
)

// ParseSortOrder maps the empty string to SortNewest.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortHighest, SortLowest:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("unknown sort order %q", s)
	}
}

// DateRange holds inclusive day bounds. A zero bound is open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Filters is the conjunction applied by Filter.
type Filters struct {
	Type      TypeFilter
	Tag       string
	DateRange DateRange
}

// ToggleTag selects tag, or clears the tag filter when tag is already selected.
func (f Filters) ToggleTag(tag string) Filters {
	if f.Tag == tag {
		f.Tag = ""
		return f
	}
	f.Tag = tag
	return f
}

// Filter returns the transactions passing every active filter, in input order.
// Records without any date pass the range checks.
func (a *Aggregator) Filter(transactions []Transaction, filters Filters) []Transaction {
	var start, end time.Time
	if !filters.DateRange.Start.IsZero() {
		start = a.startOfDay(filters.DateRange.Start)
	}
	if !filters.DateRange.End.IsZero() {
		end = a.endOfDay(filters.DateRange.End)
	}

	out := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filters.Type != "" && filters.Type != FilterAll && string(t.Type) != string(filters.Type) {
			continue
		}
		if filters.Tag != "" && !t.HasTag(filters.Tag) {
			continue
		}
		if effective, ok := t.EffectiveDate(); ok {
			if !start.IsZero() && effective.Before(start) {
				continue
			}
			if !end.IsZero() && effective.After(end) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Sort returns a stably sorted copy. Records without a date order as the
// earliest possible instant.
func (a *Aggregator) Sort(transactions []Transaction, order SortOrder) []Transaction {
	out := make([]Transaction, len(transactions))
	copy(out, transactions)

	effective := func(t Transaction) time.Time {
		d, _ := t.EffectiveDate()
		return d
	}

	switch order {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return effective(out[i]).Before(effective(out[j]))
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AmountValue().GreaterThan(out[j].AmountValue())
		})
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AmountValue().LessThan(out[j].AmountValue())
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return effective(out[i]).After(effective(out[j]))
		})
	}
	return out
}

func (a *Aggregator) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(a.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.loc)
}

// endOfDay is 23:59:59.999 local time.
func (a *Aggregator) endOfDay(t time.Time) time.Time {
	y, m, d := t.In(a.loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), a.loc)
}
