// Package ledger computes the derived views of a transaction snapshot:
// balance, statistics, filtered and sorted lists, calendar markers and
// weekly/monthly series.
//
// Every operation is a pure function of its inputs. Malformed records never
// cause an error; a bad amount counts as zero and a record without any date
// is skipped by the calendar based views.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const topCategoryLimit = 5

// Aggregator carries the location used for calendar-day comparisons.
type Aggregator struct {
	loc *time.Location
}

// NewAggregator returns an Aggregator comparing calendar days in loc.
// A nil loc means time.Local.
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{loc: loc}
}

// Location returns the location used for day bucketing.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// CategoryTotal is the amount attributed to a single tag.
type CategoryTotal struct {
	Tag    string
	Amount decimal.Decimal
}

// Statistics holds the totals over a whole snapshot.
type Statistics struct {
	TotalIncome          decimal.Decimal
	TotalExpense         decimal.Decimal
	TopExpenseCategories []CategoryTotal
}

// Balance sums income minus expense over the full, unfiltered set.
func (a *Aggregator) Balance(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		balance = balance.Add(t.signedAmount())
	}
	return balance
}

// Statistics computes income and expense totals plus the top expense tags.
// An expense counts its full amount towards each of its tags.
func (a *Aggregator) Statistics(transactions []Transaction) Statistics {
	stats := Statistics{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	var order []string
	totals := make(map[string]decimal.Decimal)
	attribute := func(tag string, amount decimal.Decimal) {
		current, seen := totals[tag]
		if !seen {
			order = append(order, tag)
			current = decimal.Zero
		}
		totals[tag] = current.Add(amount)
	}

	for _, t := range transactions {
		amount := t.AmountValue()
		switch t.Type {
		case TypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(amount)
		case TypeExpense:
			stats.TotalExpense = stats.TotalExpense.Add(amount)
			if len(t.Tags) == 0 {
				attribute(UncategorizedTag, amount)
				continue
			}
			for _, tag := range uniqueTags(t.Tags) {
				attribute(tag, amount)
			}
		}
	}

	categories := make([]CategoryTotal, len(order))
	for i, tag := range order {
		categories[i] = CategoryTotal{Tag: tag, Amount: totals[tag]}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})
	if len(categories) > topCategoryLimit {
		categories = categories[:topCategoryLimit]
	}
	stats.TopExpenseCategories = categories

	return stats
}

// uniqueTags drops repeated names so a tag listed twice is not counted twice.
func uniqueTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
