package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarMarkers_LocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	agg := NewAggregator(loc)
	ts := []Transaction{
		// 2024-03-01 03:00 UTC is 2024-02-29 22:00 local.
		{Type: TypeExpense, Amount: "1", Date: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)},
		{Type: TypeIncome, Amount: "1", Date: time.Date(2024, 2, 10, 12, 0, 0, 0, loc)},
		{Type: TypeIncome, Amount: "1", Date: time.Date(2024, 2, 10, 13, 0, 0, 0, loc)},
		{Type: TypeIncome, Amount: "1", CreatedAt: time.Date(2024, 2, 3, 12, 0, 0, 0, loc)},
		{Type: TypeIncome, Amount: "1"},
		{Type: TypeIncome, Amount: "1", Date: time.Date(2023, 2, 11, 12, 0, 0, 0, loc)},
	}

	assert.Equal(t, []int{3, 10, 29}, agg.CalendarMarkers(ts, 2024, time.February))
	assert.Empty(t, agg.CalendarMarkers(ts, 2024, time.March))
	assert.Empty(t, agg.CalendarMarkers(nil, 2024, time.March))
}

func TestWeeklySeries_SpansMonthBoundary(t *testing.T) {
	agg := NewAggregator(time.UTC)
	// Wednesday 2024-07-31; week runs Sunday 07-28 to Saturday 08-03.
	anchor := time.Date(2024, 7, 31, 15, 0, 0, 0, time.UTC)
	ts := []Transaction{
		{Type: TypeIncome, Amount: "100", Date: time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "20", Date: time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "5.5", Date: time.Date(2024, 8, 1, 23, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "9", Date: time.Date(2024, 8, 3, 23, 59, 59, 0, time.UTC)},
		// Same day-of-month in the wrong month must not leak in.
		{Type: TypeExpense, Amount: "77", Date: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "77", Date: time.Date(2024, 8, 4, 0, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "77"},
	}

	week := agg.WeeklySeries(ts, anchor)

	assert.Equal(t, time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC), week[0].Date)
	assert.Equal(t, time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC), week[6].Date)
	for i, b := range week {
		assert.Equal(t, time.Weekday(i), b.Date.Weekday())
	}
	assertDecimal(t, "100", week[0].Income)
	assertDecimal(t, "25.5", week[4].Expense)
	assertDecimal(t, "9", week[6].Expense)

	total := dec("0")
	for _, b := range week {
		total = total.Add(b.Expense)
	}
	assertDecimal(t, "34.5", total)
}

func TestWeeklySeries_AnchorOnSunday(t *testing.T) {
	agg := NewAggregator(time.UTC)
	anchor := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

	week := agg.WeeklySeries(nil, anchor)

	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), week[0].Date)
	for _, b := range week {
		assert.True(t, b.Income.IsZero())
		assert.True(t, b.Expense.IsZero())
	}
}

func TestMonthlySummary_SavingsFloorsAtZero(t *testing.T) {
	agg := NewAggregator(time.UTC)
	ts := []Transaction{
		{Type: TypeIncome, Amount: "10", Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "25", Date: time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "1000", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "1000", Date: time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC)},
		{Type: TypeExpense, Amount: "garbage", Date: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
	}

	summary := agg.MonthlySummary(ts, time.Date(2024, 4, 18, 0, 0, 0, 0, time.UTC))

	assertDecimal(t, "10", summary.Income)
	assertDecimal(t, "25", summary.Expense)
	assert.True(t, summary.Savings.IsZero())
}

func TestGoals_ProgressAndSort(t *testing.T) {
	goals := []Goal{
		{ID: "1", Text: "Visit Japan", IsCompleted: true, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Text: "Learn piano", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Text: "Run a marathon", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, GoalProgress{Total: 3, Completed: 1, Pending: 2}, Progress(goals))

	sorted := SortGoals(goals)
	assert.Equal(t, "3", sorted[0].ID)
	assert.Equal(t, "2", sorted[1].ID)
	assert.Equal(t, "1", sorted[2].ID)
	assert.Equal(t, "1", goals[0].ID)
}
