package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DayBucket is one day of a weekly series.
type DayBucket struct {
	Date    time.Time // local midnight
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySummary is the income, expense and savings of one calendar month.
type MonthlySummary struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func (a *Aggregator) civil(t time.Time) civilDate {
	y, m, d := t.In(a.loc).Date()
	return civilDate{year: y, month: m, day: d}
}

// CalendarMarkers returns the sorted days of the month holding at least one
// transaction, comparing local calendar dates.
func (a *Aggregator) CalendarMarkers(transactions []Transaction, year int, month time.Month) []int {
	marked := make(map[int]struct{})
	for _, t := range transactions {
		effective, ok := t.EffectiveDate()
		if !ok {
			continue
		}
		c := a.civil(effective)
		if c.year == year && c.month == month {
			marked[c.day] = struct{}{}
		}
	}

	days := make([]int, 0, len(marked))
	for day := range marked {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// WeeklySeries buckets income and expense per day for the Sunday to Saturday
// week containing anchor.
func (a *Aggregator) WeeklySeries(transactions []Transaction, anchor time.Time) [7]DayBucket {
	local := anchor.In(a.loc)
	y, m, d := local.Date()
	weekStart := time.Date(y, m, d-int(local.Weekday()), 0, 0, 0, 0, a.loc)

	var buckets [7]DayBucket
	index := make(map[civilDate]int, 7)
	for i := range buckets {
		day := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+i, 0, 0, 0, 0, a.loc)
		buckets[i] = DayBucket{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
		index[a.civil(day)] = i
	}

	for _, t := range transactions {
		effective, ok := t.EffectiveDate()
		if !ok {
			continue
		}
		i, ok := index[a.civil(effective)]
		if !ok {
			continue
		}
		switch t.Type {
		case TypeIncome:
			buckets[i].Income = buckets[i].Income.Add(t.AmountValue())
		case TypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(t.AmountValue())
		}
	}
	return buckets
}

// MonthlySummary totals the month containing anchor. Savings never goes
// below zero.
func (a *Aggregator) MonthlySummary(transactions []Transaction, anchor time.Time) MonthlySummary {
	target := a.civil(anchor)
	summary := MonthlySummary{
		Year:    target.year,
		Month:   target.month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Savings: decimal.Zero,
	}

	for _, t := range transactions {
		effective, ok := t.EffectiveDate()
		if !ok {
			continue
		}
		c := a.civil(effective)
		if c.year != target.year || c.month != target.month {
			continue
		}
		switch t.Type {
		case TypeIncome:
			summary.Income = summary.Income.Add(t.AmountValue())
		case TypeExpense:
			summary.Expense = summary.Expense.Add(t.AmountValue())
		}
	}

	if net := summary.Income.Sub(summary.Expense); net.IsPositive() {
		summary.Savings = net
	}
	return summary
}
