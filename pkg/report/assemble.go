package report

import (
	"github.com/shopspring/decimal"

	"github.com/example/card-report/pkg/transaction"
)

// TopCount is the number of ranked transactions shown on the dashboard.
const TopCount = 5

// CardSummary is the dashboard line for one card. TotalSpent is the
// positive spend magnitude for the window; Cashback is derived from it.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   int64           `json:"cashback"`
}

// CurrencyRate is an already-fetched exchange rate against RUB.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// StockPrice is an already-fetched day-high stock quote.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// Envelope is the dashboard snapshot produced by Assemble.
type Envelope struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardSummary    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
}

// Assemble builds the dashboard snapshot from already-loaded records
// and already-fetched market values. It performs no I/O and is
// deterministic given its inputs. ErrNoData is returned when records
// is empty.
func Assemble(greeting string, records []transaction.Transaction, w transaction.Window, rates []CurrencyRate, stocks []StockPrice) (Envelope, error) {
	top, err := TopN(records, TopCount, w)
	if err != nil {
		return Envelope{}, err
	}

	ids := transaction.UniqueCards(records)
	cards := make([]CardSummary, 0, len(ids))
	for _, id := range ids {
		total, err := TotalByCard(records, id, w)
		if err != nil {
			return Envelope{}, err
		}
		spent := total.Neg()
		cards = append(cards, CardSummary{
			LastDigits: id,
			TotalSpent: spent,
			Cashback:   Cashback(spent),
		})
	}

	if rates == nil {
		rates = []CurrencyRate{}
	}
	if stocks == nil {
		stocks = []StockPrice{}
	}
	return Envelope{
		Greeting:        greeting,
		Cards:           cards,
		TopTransactions: top,
		CurrencyRates:   rates,
		StockPrices:     stocks,
	}, nil
}
