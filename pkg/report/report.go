// Package report turns a normalized transaction list into the derived
// views shown on the dashboard: category totals, per-card summaries and
// top-N rankings. Every function is a pure computation over its inputs;
// loading records and persisting results belong to the caller.
package report

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/example/card-report/pkg/transaction"
)

// ErrNoData is returned when a ranking is requested over an empty
// record set, so callers can tell "no data loaded" apart from a window
// that matched nothing.
var ErrNoData = errors.New("no transaction data")

var hundred = decimal.NewFromInt(100)

// CategorySpend is the spend total for one category inside a window.
// The sum is sign-inverted, so money spent shows as a positive total.
type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// AggregateCategory sums the amounts of the records inside w whose
// category equals category (exact, case-sensitive) and negates the sum.
// A category that matches nothing yields a zero total, not an error;
// the requested category is echoed back either way.
func AggregateCategory(records []transaction.Transaction, category string, w transaction.Window) (CategorySpend, error) {
	if err := w.Validate(); err != nil {
		return CategorySpend{}, err
	}
	total := decimal.Zero
	for _, r := range transaction.Filter(records, w) {
		if r.Category != nil && *r.Category == category {
			total = total.Add(r.Amount)
		}
	}
	return CategorySpend{Category: category, Total: total.Neg()}, nil
}

// TotalByCard sums the signed amounts of the records inside w carrying
// the given card identifier, rounded to 2 decimal places. Spend stays
// negative here; presentation picks the sign convention.
func TotalByCard(records []transaction.Transaction, cardID string, w transaction.Window) (decimal.Decimal, error) {
	if err := w.Validate(); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range transaction.Filter(records, w) {
		if r.CardID != nil && *r.CardID == cardID {
			total = total.Add(r.Amount)
		}
	}
	return total.Round(2), nil
}

// Cashback derives the reward for a total: one unit per full hundred.
// Floor division, so negative totals round away from zero.
func Cashback(total decimal.Decimal) int64 {
	return total.Div(hundred).Floor().IntPart()
}

// TopTransaction is one row of a ranked transaction list.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TopN ranks the records inside w by raw signed amount, largest first,
// and returns at most n of them. Records with equal amounts keep their
// original relative order. An empty record set returns ErrNoData.
func TopN(records []transaction.Transaction, n int, w transaction.Window) ([]TopTransaction, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	ranked := transaction.Filter(records, w)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]TopTransaction, 0, n)
	for _, r := range ranked[:n] {
		top = append(top, TopTransaction{
			Date:        r.Date.Format(transaction.DateLayout),
			Amount:      r.Amount.Round(2),
			Category:    textOrEmpty(r.Category),
			Description: textOrEmpty(r.Description),
		})
	}
	return top, nil
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
