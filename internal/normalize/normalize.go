package normalize

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// RawRow is one decoded, headerless CSV line: date, amount, currency, sender,
// title. No field is guaranteed present or well-formed.
type RawRow []string

const (
	colDate     = 0
	colAmount   = 1
	colCurrency = 2
	colSender   = 3
	colTitle    = 4

	dateFormatDash = "02-01-2006"
	dateFormatDot  = "02.01.2006"
	dateFormatISO  = "2006-01-02"
)

// Defaults for absent text fields.
const (
	DefaultSender = "Nieznany"
	DefaultTitle  = "Bez tytułu"
)

// RateSource resolves a conversion rate into the home currency for a given
// date. Implementations must always return a usable rate (see rates package).
type RateSource interface {
	Resolve(ctx context.Context, currency model.Currency, date time.Time) decimal.Decimal
}

// Normalizer converts raw statement rows into transactions. Malformed fields
// never fail a row; they resolve to documented defaults instead.
type Normalizer struct {
	rates         RateSource
	now           func() time.Time
	defaultSender string
	defaultTitle  string
}

// New creates a Normalizer backed by the given rate source.
func New(rates RateSource) *Normalizer {
	return &Normalizer{
		rates:         rates,
		now:           time.Now,
		defaultSender: DefaultSender,
		defaultTitle:  DefaultTitle,
	}
}

// Normalize converts one raw row into a Transaction. Foreign-currency rows
// block on the rate source; everything else is pure computation.
func (n *Normalizer) Normalize(ctx context.Context, row RawRow, sourceFile string) model.Transaction {
	date := n.parseDate(field(row, colDate))
	amount := parseAmount(field(row, colAmount))
	currency := parseCurrency(field(row, colCurrency))

	var original decimal.NullDecimal
	if currency.IsForeign() {
		original = decimal.NullDecimal{Decimal: amount, Valid: true}
		rate := n.rates.Resolve(ctx, currency, date)
		amount = amount.Mul(rate).Round(2)
	}

	sender := field(row, colSender)
	if sender == "" {
		sender = n.defaultSender
	}
	title := field(row, colTitle)
	if title == "" {
		title = n.defaultTitle
	}

	return model.Transaction{
		Date:           date,
		Amount:         amount,
		OriginalAmount: original,
		Currency:       currency,
		Sender:         Fold(sender),
		Title:          Fold(title),
		SourceFile:     sourceFile,
	}
}

// parseDate accepts DD-MM-YYYY, DD.MM.YYYY or anything starting with
// YYYY-MM-DD (trailing characters truncated). Everything else resolves to the
// current processing date.
func (n *Normalizer) parseDate(s string) time.Time {
	s = strings.TrimSpace(s)

	if len(s) == 10 {
		if d, err := time.Parse(dateFormatDash, s); err == nil {
			return d
		}
		if d, err := time.Parse(dateFormatDot, s); err == nil {
			return d
		}
	}
	if len(s) >= 10 {
		if d, err := time.Parse(dateFormatISO, s[:10]); err == nil {
			return d
		}
	}

	t := n.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseAmount strips everything except digits, comma and minus, then treats
// the comma as the decimal separator. Unparseable input resolves to zero.
func parseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseCurrency recognizes exactly EUR and PLN; anything else is treated as
// the home currency with no conversion attempted.
func parseCurrency(s string) model.Currency {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(model.CurrencyEUR):
		return model.CurrencyEUR
	case string(model.CurrencyPLN):
		return model.CurrencyPLN
	default:
		return model.CurrencyPLN
	}
}

func field(row RawRow, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
