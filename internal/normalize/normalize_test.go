package normalize

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// fixedRates returns the same rate for every lookup and records calls.
type fixedRates struct {
	rate  decimal.Decimal
	calls int
}

func (f *fixedRates) Resolve(_ context.Context, _ model.Currency, _ time.Time) decimal.Decimal {
	f.calls++
	return f.rate
}

func newTestNormalizer(rates RateSource, today time.Time) *Normalizer {
	n := New(rates)
	n.now = func() time.Time { return today }
	return n
}

func TestParseDateShapes(t *testing.T) {
	today := date(2024, 6, 15)
	n := newTestNormalizer(&fixedRates{rate: dec("1")}, today)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"dash", "31-01-2024", date(2024, 1, 31)},
		{"dot", "31.01.2024", date(2024, 1, 31)},
		{"iso", "2024-01-31", date(2024, 1, 31)},
		{"iso with trailing time", "2024-01-31T10:30:00", date(2024, 1, 31)},
		{"whitespace around", " 31-01-2024 ", date(2024, 1, 31)},
		{"empty falls back to today", "", today},
		{"garbage falls back to today", "next tuesday", today},
		{"impossible date falls back to today", "99-99-2024", today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.parseDate(tt.input)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{"grouped with currency suffix", "1 234,56 PLN", dec("1234.56")},
		{"negative", "-99,90", dec("-99.9")},
		{"plain integer", "250", dec("250")},
		{"empty", "", decimal.Zero},
		{"non-numeric", "n/a", decimal.Zero},
		{"double comma unparseable", "1,2,3", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.input)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestUnrecognizedCurrencyDefaultsToHome(t *testing.T) {
	rates := &fixedRates{rate: dec("4.30")}
	n := newTestNormalizer(rates, date(2024, 6, 15))

	txn := n.Normalize(context.Background(), RawRow{"01-03-2024", "100,00", "usd", "ACME", "zaliczka"}, "test.csv")

	assert.Equal(t, model.CurrencyPLN, txn.Currency)
	assert.False(t, txn.OriginalAmount.Valid, "no original amount for home currency")
	assert.True(t, dec("100").Equal(txn.Amount))
	assert.Zero(t, rates.calls, "no conversion for unrecognized currency")
}

func TestForeignCurrencyConversion(t *testing.T) {
	rates := &fixedRates{rate: dec("4.30")}
	n := newTestNormalizer(rates, date(2024, 6, 15))

	txn := n.Normalize(context.Background(), RawRow{"01-03-2024", "100", "EUR", "ACME", "obóz letni"}, "test.csv")

	assert.Equal(t, model.CurrencyEUR, txn.Currency)
	require.True(t, txn.OriginalAmount.Valid)
	assert.True(t, dec("100").Equal(txn.OriginalAmount.Decimal))
	assert.True(t, dec("430.00").Equal(txn.Amount), "got %s", txn.Amount)
	assert.Equal(t, 1, rates.calls)
}

func TestFallbackRateKeepsAmountEqual(t *testing.T) {
	// A neutral 1:1 rate leaves amount numerically equal to the original.
	n := newTestNormalizer(&fixedRates{rate: dec("1")}, date(2024, 6, 15))

	txn := n.Normalize(context.Background(), RawRow{"01-03-2024", "123,45", "EUR", "", ""}, "test.csv")

	require.True(t, txn.OriginalAmount.Valid)
	assert.True(t, txn.Amount.Equal(txn.OriginalAmount.Decimal.Round(2)))
}

func TestTextDefaultsAndFolding(t *testing.T) {
	n := newTestNormalizer(&fixedRates{rate: dec("1")}, date(2024, 6, 15))

	txn := n.Normalize(context.Background(), RawRow{"01-03-2024", "10", "PLN", "", ""}, "test.csv")
	assert.Equal(t, "Nieznany", txn.Sender)
	assert.Equal(t, "Bez tytulu", txn.Title, "default title is folded too")

	txn = n.Normalize(context.Background(), RawRow{"01-03-2024", "10", "PLN", "Paweł Żółty", "Opłata za obóz"}, "test.csv")
	assert.Equal(t, "Pawel Zolty", txn.Sender)
	assert.Equal(t, "Oplata za oboz", txn.Title)
}

func TestShortRowIsDefensive(t *testing.T) {
	today := date(2024, 6, 15)
	n := newTestNormalizer(&fixedRates{rate: dec("1")}, today)

	txn := n.Normalize(context.Background(), RawRow{"31-01-2024"}, "test.csv")

	assert.True(t, date(2024, 1, 31).Equal(txn.Date))
	assert.True(t, txn.Amount.IsZero())
	assert.Equal(t, model.CurrencyPLN, txn.Currency)
	assert.Equal(t, "Nieznany", txn.Sender)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := newTestNormalizer(&fixedRates{rate: dec("4.25")}, date(2024, 6, 15))
	row := RawRow{"02.05.2024", "-1 500,00", "EUR", "Hotel Górski", "pobyt 10-12 Zakopane"}

	first := n.Normalize(context.Background(), row, "a.csv")
	second := n.Normalize(context.Background(), row, "a.csv")

	assert.Equal(t, first, second)
}
