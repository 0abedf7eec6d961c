package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skarbnik-dev/skarbnik/internal/model"
)

// DefaultBaseURL is the public NBP API host.
const DefaultBaseURL = "https://api.nbp.pl"

// ErrNoRate marks dates the source has no published rate for (weekends,
// holidays). Callers treat it as "try an earlier date", not as a failure.
var ErrNoRate = errors.New("no rate published")

// Client fetches daily table-A reference rates from an NBP-style endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a Client. An empty baseURL selects the public NBP API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type rateResponse struct {
	Rates []struct {
		Mid decimal.Decimal `json:"mid"`
	} `json:"rates"`
}

// MidRate returns the published mid rate for currency on the given date.
// A non-success status or a missing mid field yields ErrNoRate.
func (c *Client) MidRate(ctx context.Context, currency model.Currency, date time.Time) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/exchangerates/rates/a/%s/%s/?format=json",
		c.baseURL, strings.ToLower(string(currency)), date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %s (status %d)",
			ErrNoRate, currency, date.Format("2006-01-02"), resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("decoding rate response: %w", err)
	}
	if len(body.Rates) == 0 || body.Rates[0].Mid.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %s (empty body)",
			ErrNoRate, currency, date.Format("2006-01-02"))
	}
	return body.Rates[0].Mid, nil
}
