package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency labels the source currency of a statement row.
type Currency string

const (
	// CurrencyPLN is the home reporting currency.
	CurrencyPLN Currency = "PLN"
	// CurrencyEUR is the only supported foreign currency.
	CurrencyEUR Currency = "EUR"
)

// IsForeign reports whether amounts in this currency require conversion.
func (c Currency) IsForeign() bool {
	return c != CurrencyPLN
}

// Transaction is one normalized bank-statement row. Amount is always in the
// home currency; OriginalAmount is valid only when Currency is foreign.
type Transaction struct {
	ID             uuid.UUID // assigned by the store on insert
	Date           time.Time
	Amount         decimal.Decimal // negative = expense, positive = income
	OriginalAmount decimal.NullDecimal
	Currency       Currency
	Sender         string
	Title          string
	Category       string // mutable after import
	Camp           string // mutable after import, empty at creation
	SourceFile     string
}
