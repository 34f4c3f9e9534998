// Package market fetches the currency rates and stock quotes shown on
// the dashboard. The report engine never touches this package; the CLI
// fetches values here and hands them over as plain numbers.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 15 * time.Second

// ProviderError reports a failed market-data lookup.
type ProviderError struct {
	Op     string // "rate" or "stock"
	Symbol string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("market %s %s: %v", e.Op, e.Symbol, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Config carries the provider endpoints and credentials. The API key is
// passed in explicitly; the provider never reads the environment.
type Config struct {
	BaseURL   string
	StocksURL string
	APIKey    string
	Timeout   time.Duration
}

// Provider looks up exchange rates and stock quotes over HTTP with a
// bounded timeout per request.
type Provider struct {
	cfg    Config
	client *http.Client
}

// New creates a provider from cfg, defaulting the timeout when unset.
func New(cfg Config) *Provider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Rate returns the RUB exchange rate for the given ISO currency code.
func (p *Provider) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/latest?symbols=RUB&base=%s", p.cfg.BaseURL, currency)
	body, err := p.get(ctx, url)
	if err != nil {
		return decimal.Zero, &ProviderError{Op: "rate", Symbol: currency, Err: err}
	}

	var payload struct {
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, &ProviderError{Op: "rate", Symbol: currency, Err: err}
	}
	rate, ok := payload.Rates["RUB"]
	if !ok {
		return decimal.Zero, &ProviderError{Op: "rate", Symbol: currency, Err: fmt.Errorf("no RUB rate in response")}
	}
	return rate, nil
}

// StockHigh returns the day's high price for a ticker. A day without
// trading data yields zero, not an error.
func (p *Provider) StockHigh(ctx context.Context, ticker string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/history?period=1d", p.cfg.StocksURL, ticker)
	body, err := p.get(ctx, url)
	if err != nil {
		return decimal.Zero, &ProviderError{Op: "stock", Symbol: ticker, Err: err}
	}

	var payload struct {
		Quotes []struct {
			High decimal.Decimal `json:"high"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, &ProviderError{Op: "stock", Symbol: ticker, Err: err}
	}
	if len(payload.Quotes) == 0 {
		return decimal.Zero, nil
	}
	return payload.Quotes[0].High, nil
}

func (p *Provider) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if p.cfg.APIKey != "" {
		req.Header.Set("apikey", p.cfg.APIKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
