package core

import (
	"testing"
	"time"
)

func tx(typ TransactionType, amount float64, category, date string) Transaction {
	return Transaction{
		ID:          "id-" + date + "-" + category,
		Amount:      amount,
		Category:    category,
		Description: "test",
		Date:        date,
		Type:        typ,
	}
}

func TestComputeTotalsEmptyLedger(t *testing.T) {
	got := ComputeTotals(nil)
	if got.Income != 0 || got.Expense != 0 || got.Balance != 0 {
		t.Fatalf("empty ledger should be all zeros, got %+v", got)
	}
}

func TestComputeTotalsBalanceIdentity(t *testing.T) {
	ledger := []Transaction{
		tx(TypeIncome, 1000, "Salary", "2025-06-01"),
		tx(TypeExpense, 250.50, "Rent", "2025-06-02"),
		tx(TypeExpense, 49.50, "Food", "2025-06-03"),
		tx(TypeIncome, 100, "Gift", "2025-06-04"),
	}
	got := ComputeTotals(ledger)
	if got.Income != 1100 {
		t.Errorf("Income = %v, want 1100", got.Income)
	}
	if got.Expense != 300 {
		t.Errorf("Expense = %v, want 300", got.Expense)
	}
	if got.Balance != got.Income-got.Expense {
		t.Errorf("Balance = %v, want income-expense = %v", got.Balance, got.Income-got.Expense)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := []Transaction{
		tx(TypeIncome, 10, "A", "2025-06-01"),
		tx(TypeExpense, 3, "B", "2025-06-02"),
		tx(TypeIncome, 7, "C", "2025-06-03"),
	}
	b := []Transaction{a[2], a[0], a[1]}
	if ComputeTotals(a) != ComputeTotals(b) {
		t.Fatal("totals should not depend on ledger order")
	}
}

func TestWeeklyTrendShape(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 4, 5, 0, time.Local)

	for _, ledger := range [][]Transaction{nil, {tx(TypeExpense, 1, "Food", "1999-01-01")}} {
		points := WeeklyTrend(ledger, today)
		if len(points) != TrendDays {
			t.Fatalf("expected %d buckets, got %d", TrendDays, len(points))
		}
		if points[0].Date != "2025-06-04" {
			t.Errorf("oldest bucket = %s, want 2025-06-04", points[0].Date)
		}
		if points[TrendDays-1].Date != "2025-06-10" {
			t.Errorf("newest bucket = %s, want 2025-06-10", points[TrendDays-1].Date)
		}
		for _, p := range points {
			if p.Income != 0 || p.Expense != 0 {
				t.Errorf("bucket %s should be zero, got %+v", p.Date, p)
			}
		}
	}
}

func TestWeeklyTrendBucketsExactDateMatch(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	ledger := []Transaction{
		tx(TypeExpense, 50, "Food", "2025-06-10"),
		tx(TypeIncome, 20, "Salary", "2025-06-08"),
		tx(TypeIncome, 5, "Salary", "2025-06-08"),
		tx(TypeExpense, 99, "Rent", "2025-06-03"), // one day outside the window
	}

	points := WeeklyTrend(ledger, today)

	last := points[TrendDays-1]
	if last.Expense != 50 || last.Income != 0 {
		t.Errorf("today bucket = %+v, want expense=50 income=0", last)
	}
	var day8 TrendPoint
	for _, p := range points {
		if p.Date == "2025-06-08" {
			day8 = p
		}
	}
	if day8.Income != 25 || day8.Expense != 0 {
		t.Errorf("2025-06-08 bucket = %+v, want income=25", day8)
	}

	var sum float64
	for _, p := range points {
		sum += p.Income + p.Expense
	}
	if sum != 75 {
		t.Errorf("out-of-window transaction leaked into buckets, total = %v", sum)
	}
}

func TestWeeklyTrendCrossesMonthBoundary(t *testing.T) {
	today := time.Date(2025, 7, 2, 0, 0, 0, 0, time.Local)
	points := WeeklyTrend(nil, today)
	if points[0].Date != "2025-06-26" || points[TrendDays-1].Date != "2025-07-02" {
		t.Fatalf("window = %s..%s, want 2025-06-26..2025-07-02", points[0].Date, points[TrendDays-1].Date)
	}
}

func TestExpenseBreakdownSortedDescending(t *testing.T) {
	ledger := []Transaction{
		tx(TypeExpense, 10, "Food", "2025-06-01"),
		tx(TypeExpense, 40, "Rent", "2025-06-01"),
		tx(TypeIncome, 500, "Salary", "2025-06-01"), // ignored
		tx(TypeExpense, 15, "Food", "2025-06-02"),
	}
	got := ExpenseBreakdown(ledger)
	want := []CategoryAmount{{"Rent", 40}, {"Food", 25}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExpenseBreakdownStableTies(t *testing.T) {
	ledger := []Transaction{
		tx(TypeExpense, 10, "A", "2025-06-01"),
		tx(TypeExpense, 10, "B", "2025-06-01"),
	}
	got := ExpenseBreakdown(ledger)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("equal totals must keep first-seen order, got %+v", got)
	}
}

func TestExpenseBreakdownEmpty(t *testing.T) {
	if got := ExpenseBreakdown(nil); len(got) != 0 {
		t.Fatalf("empty ledger should yield empty breakdown, got %+v", got)
	}
}

func TestSingleExpenseScenario(t *testing.T) {
	today := time.Now()
	ledger := []Transaction{tx(TypeExpense, 50.00, "Food", today.Format(DateLayout))}

	totals := ComputeTotals(ledger)
	if totals.Balance != -50.00 {
		t.Errorf("balance = %v, want -50", totals.Balance)
	}

	points := WeeklyTrend(ledger, today)
	last := points[TrendDays-1]
	if last.Expense != 50.00 || last.Income != 0 {
		t.Errorf("today bucket = %+v, want expense=50 income=0", last)
	}
	for _, p := range points[:TrendDays-1] {
		if p.Income != 0 || p.Expense != 0 {
			t.Errorf("bucket %s should be zero, got %+v", p.Date, p)
		}
	}

	breakdown := ExpenseBreakdown(ledger)
	if len(breakdown) != 1 || breakdown[0].Name != "Food" || breakdown[0].Value != 50.00 {
		t.Errorf("breakdown = %+v, want [(Food, 50)]", breakdown)
	}
}
