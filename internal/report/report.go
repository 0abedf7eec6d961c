// Package report computes read-side aggregates over stored transactions.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// Filter bounds a summary by date. Zero values leave a side unbounded.
type Filter struct {
	From time.Time
	To   time.Time
}

// Summary aggregates transactions for one reporting window.
type Summary struct {
	Count      int
	Income     decimal.Decimal // sum of positive amounts
	Expenses   decimal.Decimal // absolute sum of negative amounts
	Net        decimal.Decimal
	ByCategory map[string]decimal.Decimal
	ByCamp     map[string]decimal.Decimal
}

// Summarize folds stored transactions into a Summary. All amounts are already
// in the home currency, so this is plain addition.
func Summarize(txns []model.Transaction, f Filter) Summary {
	s := Summary{
		ByCategory: make(map[string]decimal.Decimal),
		ByCamp:     make(map[string]decimal.Decimal),
	}

	for _, txn := range txns {
		if !f.From.IsZero() && txn.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && txn.Date.After(f.To) {
			continue
		}

		s.Count++
		if txn.Amount.IsNegative() {
			s.Expenses = s.Expenses.Add(txn.Amount.Neg())
		} else {
			s.Income = s.Income.Add(txn.Amount)
		}

		if txn.Category != "" {
			s.ByCategory[txn.Category] = s.ByCategory[txn.Category].Add(txn.Amount)
		}
		if txn.Camp != "" {
			s.ByCamp[txn.Camp] = s.ByCamp[txn.Camp].Add(txn.Amount)
		}
	}

	s.Net = s.Income.Sub(s.Expenses)
	return s
}
