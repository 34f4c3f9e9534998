package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/card-report/internal/market"
	"github.com/example/card-report/pkg/report"
	"github.com/example/card-report/pkg/transaction"
)

var dashboardDate string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Build the dashboard snapshot",
	Long: `Dashboard loads the transaction export, summarizes spend and cashback
per card, ranks the top transactions, fetches currency rates and stock
quotes, and writes the combined snapshot to views.json.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", `reference date and time, "DD.MM.YYYY HH:MM" (default: now)`)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, err := newAppEnv()
	if err != nil {
		return err
	}

	dateText := dashboardDate
	if dateText == "" && !cmd.Flags().Changed("date") {
		dateText = prompt("Date and time (DD.MM.YYYY HH:MM, empty for now)")
	}
	ref := time.Now()
	if dateText != "" {
		ref, err = time.Parse(promptDateTimeLayout, dateText)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateText, err)
		}
	}

	records, err := app.loader.Load(app.cfg.DataFile)
	if err != nil {
		return err
	}

	provider := market.New(market.Config{
		BaseURL:   app.cfg.Market.BaseURL,
		StocksURL: app.cfg.Market.StocksURL,
		APIKey:    os.Getenv(app.cfg.Market.APIKeyEnv),
		Timeout:   app.cfg.Market.Timeout(),
	})
	rates, stocks := fetchMarketData(cmd.Context(), app, provider)

	env, err := report.Assemble(report.Greeting(ref), records, transaction.Window{}, rates, stocks)
	if err != nil {
		return err
	}
	if err := app.out.Write("views.json", env); err != nil {
		return err
	}

	printDashboard(env)
	return nil
}

// fetchMarketData degrades per field: a failed rate or quote is skipped
// with a warning instead of losing the whole dashboard.
func fetchMarketData(ctx context.Context, app *appEnv, provider *market.Provider) ([]report.CurrencyRate, []report.StockPrice) {
	var rates []report.CurrencyRate
	for _, code := range app.cfg.Market.Currencies {
		rate, err := provider.Rate(ctx, code)
		if err != nil {
			app.log.Warn().Str("currency", code).Err(err).Msg("skipping currency rate")
			continue
		}
		rates = append(rates, report.CurrencyRate{Currency: code, Rate: rate.Round(2)})
	}

	var stocks []report.StockPrice
	for _, ticker := range app.cfg.Market.Stocks {
		price, err := provider.StockHigh(ctx, ticker)
		if err != nil {
			app.log.Warn().Str("stock", ticker).Err(err).Msg("skipping stock price")
			continue
		}
		stocks = append(stocks, report.StockPrice{Stock: ticker, Price: price.Round(2)})
	}
	return rates, stocks
}

func printDashboard(env report.Envelope) {
	fmt.Println(env.Greeting)
	for _, c := range env.Cards {
		fmt.Printf("Card %s: spent %s, cashback %d\n", c.LastDigits, c.TotalSpent.StringFixed(2), c.Cashback)
	}
	if len(env.TopTransactions) > 0 {
		fmt.Println("Top transactions:")
		for _, t := range env.TopTransactions {
			fmt.Printf("  %s  %10s  %s  %s\n", t.Date, t.Amount.StringFixed(2), t.Category, t.Description)
		}
	}
	for _, r := range env.CurrencyRates {
		fmt.Printf("%s: %s RUB\n", r.Currency, r.Rate.StringFixed(2))
	}
	for _, s := range env.StockPrices {
		fmt.Printf("%s: %s\n", s.Stock, s.Price.StringFixed(2))
	}
}
