package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DateLayout is the calendar-date format used throughout the ledger.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// Transaction is a single income or expense record. It is immutable once
	// created; deletion is the only mutation path.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      float64         `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        string          `json:"date"` // YYYY-MM-DD
		Type        TransactionType `json:"type"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyDescription = errors.New("empty description")
)

// IsValid reports whether t is one of the two enumerated transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Sign returns "+" for income and "-" for expense.
func (t TransactionType) Sign() string {
	if t == TypeIncome {
		return "+"
	}
	return "-"
}

func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) || t.Amount < 0 {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
