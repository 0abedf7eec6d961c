package rates

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// DefaultLookbackDays bounds the backward search for a published rate.
const DefaultLookbackDays = 7

const dateFormat = "2006-01-02"

// Source is the remote lookup the resolver probes per date.
type Source interface {
	MidRate(ctx context.Context, currency model.Currency, date time.Time) (decimal.Decimal, error)
}

// Resolver answers rate lookups from a process-lifetime cache, probing the
// source backward day by day when the requested date has no published rate.
// Cached entries are immutable historical facts and are never invalidated.
type Resolver struct {
	source   Source
	lookback int
	log      zerolog.Logger

	mu    sync.Mutex
	cache map[cacheKey]decimal.Decimal
}

type cacheKey struct {
	currency model.Currency
	date     string // YYYY-MM-DD
}

// NewResolver creates a Resolver. A lookback of 0 selects DefaultLookbackDays.
func NewResolver(source Source, lookback int, log zerolog.Logger) *Resolver {
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}
	return &Resolver{
		source:   source,
		lookback: lookback,
		log:      log,
		cache:    make(map[cacheKey]decimal.Decimal),
	}
}

// Resolve returns a conversion rate for (currency, date). It never fails:
// when every probe in the lookback window comes up empty it returns a neutral
// rate of 1 so a single unresolvable row cannot abort an import. The degraded
// case is logged at warn level because it mislabels the conversion as 1:1.
func (r *Resolver) Resolve(ctx context.Context, currency model.Currency, date time.Time) decimal.Decimal {
	probe := date
	for i := 0; i < r.lookback; i++ {
		key := cacheKey{currency: currency, date: probe.Format(dateFormat)}

		if rate, ok := r.cached(key); ok {
			return rate
		}

		rate, err := r.source.MidRate(ctx, currency, probe)
		if err == nil {
			// Cache under the probe date only; propagating the found rate
			// to the requested date would misstate which day it was
			// published for.
			r.store(key, rate)
			return rate
		}

		probe = probe.AddDate(0, 0, -1)
	}

	r.log.Warn().
		Str("currency", string(currency)).
		Str("date", date.Format(dateFormat)).
		Int("lookback_days", r.lookback).
		Msg("no published rate within lookback window, falling back to 1:1")
	return decimal.NewFromInt(1)
}

func (r *Resolver) cached(key cacheKey) (decimal.Decimal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.cache[key]
	return rate, ok
}

func (r *Resolver) store(key cacheKey, rate decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = rate
}

// Prime inserts a known rate for (currency, date) without consulting the
// source. Used by tests and by operators replaying historical imports.
func (r *Resolver) Prime(currency model.Currency, date time.Time, rate decimal.Decimal) {
	r.store(cacheKey{currency: currency, date: date.Format(dateFormat)}, rate)
}
