package core

import (
	"sort"
	"time"
)

// TrendDays is the fixed size of the trailing daily trend window.
const TrendDays = 7

type (
	// Totals aggregates the whole ledger. Balance is income minus expense.
	Totals struct {
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
		Balance float64 `json:"balance"`
	}

	// TrendPoint holds per-day income and expense sums for one calendar date.
	TrendPoint struct {
		Date    string  `json:"date"` // YYYY-MM-DD
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}

	// CategoryAmount is an expense total aggregated by category name.
	CategoryAmount struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
)

// ComputeTotals sums income and expense amounts over the ledger snapshot.
// Amounts are summed as given; an empty ledger yields all zeros.
func ComputeTotals(ledger []Transaction) Totals {
	var t Totals
	for _, tx := range ledger {
		switch tx.Type {
		case TypeIncome:
			t.Income += tx.Amount
		case TypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// WeeklyTrend buckets the ledger into exactly TrendDays calendar days ending
// at today (local time), oldest first. A transaction lands in a bucket only
// when its date string equals the bucket date exactly; days without
// transactions keep zero sums.
func WeeklyTrend(ledger []Transaction, today time.Time) []TrendPoint {
	points := make([]TrendPoint, TrendDays)
	index := make(map[string]int, TrendDays)
	for i := 0; i < TrendDays; i++ {
		date := today.AddDate(0, 0, i-(TrendDays-1)).Format(DateLayout)
		points[i] = TrendPoint{Date: date}
		index[date] = i
	}

	for _, tx := range ledger {
		i, ok := index[tx.Date]
		if !ok {
			continue
		}
		switch tx.Type {
		case TypeIncome:
			points[i].Income += tx.Amount
		case TypeExpense:
			points[i].Expense += tx.Amount
		}
	}

	return points
}

// ExpenseBreakdown groups expense transactions by category and returns the
// per-category totals sorted by total descending. Ties keep the order in
// which a category was first encountered in the ledger.
func ExpenseBreakdown(ledger []Transaction) []CategoryAmount {
	totals := make(map[string]float64)
	var order []string
	for _, tx := range ledger {
		if tx.Type != TypeExpense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount
	}

	out := make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryAmount{Name: name, Value: totals[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	return out
}
