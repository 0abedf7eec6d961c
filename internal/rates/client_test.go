package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

func TestMidRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exchangerates/rates/a/eur/2024-03-01/", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"table":"A","currency":"euro","code":"EUR","rates":[{"no":"044/A/NBP/2024","effectiveDate":"2024-03-01","mid":4.3022}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rate, err := c.MidRate(context.Background(), model.CurrencyEUR, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "4.3022", rate.String())
}

func TestMidRateNotFound(t *testing.T) {
	// NBP answers 404 for weekends and holidays.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 NotFound - Not Found - Brak danych", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.MidRate(context.Background(), model.CurrencyEUR, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoRate)
}

func TestMidRateEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.MidRate(context.Background(), model.CurrencyEUR, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoRate)
}

func TestMidRateServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.MidRate(context.Background(), model.CurrencyEUR, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
