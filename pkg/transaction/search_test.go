package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOperations() []Transaction {
	return []Transaction{
		{
			Date:        time.Date(2021, 10, 16, 15, 16, 16, 0, time.UTC),
			Amount:      decimal.NewFromFloat(-50.0),
			Category:    ptr("Переводы"),
			Description: ptr("Азер Г."),
		},
		{
			Date:        time.Date(2021, 10, 15, 21, 25, 17, 0, time.UTC),
			Amount:      decimal.NewFromFloat(-86.0),
			Category:    ptr("Местный транспорт"),
			Description: ptr("Северо-Западная пригородная пассажирская компания"),
			CardID:      ptr("*7197"),
		},
	}
}

func TestSearch_ByCategory(t *testing.T) {
	result := Search(sampleOperations(), "Переводы")
	require.Len(t, result, 1)
	assert.Equal(t, "Азер Г.", *result[0].Description)
}

func TestSearch_ByDescription(t *testing.T) {
	result := Search(sampleOperations(), "Северо-Западная")
	require.Len(t, result, 1)
	assert.Equal(t, "Местный транспорт", *result[0].Category)
}

func TestSearch_CaseFoldsCyrillic(t *testing.T) {
	result := Search(sampleOperations(), "северо-западная")
	require.Len(t, result, 1)

	result = Search(sampleOperations(), "ПЕРЕВОДЫ")
	require.Len(t, result, 1)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, Search(sampleOperations(), ""))
}

func TestSearch_EmptyRecords(t *testing.T) {
	assert.Empty(t, Search(nil, "Переводы"))
	assert.Empty(t, Search([]Transaction{}, "Переводы"))
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(sampleOperations(), "Несуществующий"))
}

func TestSearch_SkipsRecordsWithoutText(t *testing.T) {
	records := append(sampleOperations(), Transaction{
		Date:        time.Date(2021, 10, 17, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(-10),
		Category:    nil,
		Description: ptr("Переводы туда-сюда"),
	})

	// The extra record mentions the query in its description, but has no
	// category text at all, so it never takes part in the search.
	result := Search(records, "Переводы")
	require.Len(t, result, 1)
	assert.Equal(t, "Азер Г.", *result[0].Description)
}
