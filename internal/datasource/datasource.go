// Package datasource loads bank-card transaction exports from disk and
// normalizes the rows into transaction values.
package datasource

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/example/card-report/pkg/transaction"
)

// ErrUnsupportedFormat is returned for file extensions the loader does
// not recognize.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Column names used by the bank's export.
const (
	colDate        = "Дата операции"
	colAmount      = "Сумма операции"
	colCategory    = "Категория"
	colDescription = "Описание"
	colCard        = "Номер карты"
)

// Loader reads transaction export files. Rows without a parseable
// operation date or amount are skipped with a warning rather than
// aborting the whole load.
type Loader struct {
	log zerolog.Logger
}

// New creates a loader that reports skipped rows through log.
func New(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the file at path. Supported formats: .csv, .xlsx and .json
// (an array of objects keyed by the export's column names).
func (l *Loader) Load(path string) ([]transaction.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.loadCSV(path)
	case ".xlsx":
		return l.loadXLSX(path)
	case ".json":
		return l.loadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (l *Loader) loadCSV(path string) ([]transaction.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return l.fromRows(rows)
}

func (l *Loader) loadXLSX(path string) ([]transaction.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []transaction.Transaction{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return l.fromRows(rows)
}

func (l *Loader) loadJSON(path string) ([]transaction.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}

	records := make([]transaction.Transaction, 0, len(raw))
	for i, row := range raw {
		rec, err := normalize(row)
		if err != nil {
			l.log.Warn().Int("index", i).Err(err).Msg("skipping malformed record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// fromRows maps header-keyed tabular rows into transactions. Empty
// cells count as absent values.
func (l *Loader) fromRows(rows [][]string) ([]transaction.Transaction, error) {
	if len(rows) < 2 {
		return []transaction.Transaction{}, nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]transaction.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		m := make(map[string]any, len(headers))
		for j, h := range headers {
			if j >= len(row) {
				break
			}
			if cell := strings.TrimSpace(row[j]); cell != "" {
				m[h] = cell
			}
		}
		rec, err := normalize(m)
		if err != nil {
			l.log.Warn().Int("row", i+2).Err(err).Msg("skipping malformed record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalize(row map[string]any) (transaction.Transaction, error) {
	dateText, ok := row[colDate].(string)
	if !ok || dateText == "" {
		return transaction.Transaction{}, errors.New("missing operation date")
	}
	date, err := time.Parse(transaction.DateLayout, dateText)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("bad operation date %q: %w", dateText, err)
	}
	amount, err := parseAmount(row[colAmount])
	if err != nil {
		return transaction.Transaction{}, err
	}
	return transaction.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    textField(row[colCategory]),
		Description: textField(row[colDescription]),
		CardID:      textField(row[colCard]),
	}, nil
}

func parseAmount(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case string:
		// The export writes decimal commas.
		d, err := decimal.NewFromString(strings.ReplaceAll(a, ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("bad amount %q: %w", a, err)
		}
		return d, nil
	default:
		return decimal.Zero, errors.New("missing amount")
	}
}

// textField keeps only textual, non-empty cells; everything else maps
// to an absent field.
func textField(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
