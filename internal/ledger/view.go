package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ViewParams are the presentation-side inputs of a View.
type ViewParams struct {
	Filters Filters
	Sort    SortOrder
	// Anchor selects the calendar month, week and monthly summary.
	Anchor time.Time
}

// View bundles every derived value for one snapshot.
type View struct {
	Balance         decimal.Decimal
	Statistics      Statistics
	Transactions    []Transaction
	CalendarMarkers []int
	Week            [7]DayBucket
	Month           MonthlySummary
}

// Compute recomputes the whole view from scratch.
func (a *Aggregator) Compute(transactions []Transaction, params ViewParams) View {
	anchor := params.Anchor.In(a.loc)
	return View{
		Balance:         a.Balance(transactions),
		Statistics:      a.Statistics(transactions),
		Transactions:    a.Sort(a.Filter(transactions, params.Filters), params.Sort),
		CalendarMarkers: a.CalendarMarkers(transactions, anchor.Year(), anchor.Month()),
		Week:            a.WeeklySeries(transactions, anchor),
		Month:           a.MonthlySummary(transactions, anchor),
	}
}
