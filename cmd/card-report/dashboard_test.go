package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/card-report/internal/config"
	"github.com/example/card-report/internal/logger"
	"github.com/example/card-report/internal/market"
)

func TestFetchMarketData_SkipsFailedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/latest" && r.URL.Query().Get("base") == "USD":
			w.WriteHeader(http.StatusForbidden)
		case r.URL.Path == "/latest":
			w.Write([]byte(`{"rates": {"RUB": 90.0}}`))
		case strings.HasSuffix(r.URL.Path, "/history"):
			w.Write([]byte(`{"quotes": [{"high": 150.0}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	var buf bytes.Buffer
	app := &appEnv{
		cfg: &config.Config{
			Market: config.MarketConfig{
				Currencies: []string{"USD", "EUR"},
				Stocks:     []string{"AAPL"},
			},
		},
		log: logger.NewWithWriter(&buf),
	}
	provider := market.New(market.Config{BaseURL: srv.URL, StocksURL: srv.URL})

	rates, stocks := fetchMarketData(context.Background(), app, provider)

	// The failing USD lookup is dropped; the rest of the data survives.
	require.Len(t, rates, 1)
	assert.Equal(t, "EUR", rates[0].Currency)
	assert.Equal(t, "90", rates[0].Rate.String())

	require.Len(t, stocks, 1)
	assert.Equal(t, "AAPL", stocks[0].Stock)

	assert.Contains(t, buf.String(), "skipping currency rate")
	assert.Contains(t, buf.String(), "USD")
}

func TestFetchMarketData_SkipsFailedStocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/latest":
			w.Write([]byte(`{"rates": {"RUB": 90.0}}`))
		case strings.HasPrefix(r.URL.Path, "/TSLA/"):
			w.Write([]byte(`not json`))
		default:
			w.Write([]byte(`{"quotes": [{"high": 150.0}]}`))
		}
	}))
	defer srv.Close()

	var buf bytes.Buffer
	app := &appEnv{
		cfg: &config.Config{
			Market: config.MarketConfig{
				Currencies: []string{"USD"},
				Stocks:     []string{"AAPL", "TSLA"},
			},
		},
		log: logger.NewWithWriter(&buf),
	}
	provider := market.New(market.Config{BaseURL: srv.URL, StocksURL: srv.URL})

	rates, stocks := fetchMarketData(context.Background(), app, provider)

	require.Len(t, rates, 1)
	require.Len(t, stocks, 1)
	assert.Equal(t, "AAPL", stocks[0].Stock)
	assert.Contains(t, buf.String(), "skipping stock price")
}
