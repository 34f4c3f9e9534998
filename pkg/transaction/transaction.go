package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the operation date format used by the bank's export,
// e.g. "16.10.2021 15:16:16".
const DateLayout = "02.01.2006 15:04:05"

// Transaction represents a single normalized bank-card transaction.
// Negative amounts are outflows. Category, Description and CardID are
// nil when the source cell was empty or not textual.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	CardID      *string         `json:"card_id"`
}

// UniqueCards returns the distinct card identifiers present in records,
// in first-seen order. Records without a card are ignored.
func UniqueCards(records []Transaction) []string {
	seen := make(map[string]bool)
	var cards []string
	for _, r := range records {
		if r.CardID == nil || seen[*r.CardID] {
			continue
		}
		seen[*r.CardID] = true
		cards = append(cards, *r.CardID)
	}
	return cards
}
