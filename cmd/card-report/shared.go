package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/card-report/internal/config"
	"github.com/example/card-report/internal/datasource"
	"github.com/example/card-report/internal/logger"
	"github.com/example/card-report/internal/sink"
	"github.com/example/card-report/pkg/transaction"
)

// Prompt and snapshot date formats.
const (
	promptDateTimeLayout = "02.01.2006 15:04"
	promptDateLayout     = "02.01.2006"
)

// appEnv bundles the collaborators every action needs.
type appEnv struct {
	cfg    *config.Config
	log    zerolog.Logger
	loader *datasource.Loader
	out    *sink.Sink
}

func newAppEnv() (*appEnv, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	log := logger.New()
	return &appEnv{
		cfg:    cfg,
		log:    log,
		loader: datasource.New(log),
		out:    sink.New(cfg.OutputDir),
	}, nil
}

// prompt asks for a free-text value on stdin when the matching flag was
// left empty.
func prompt(label string) string {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func printTransactions(records []transaction.Transaction) {
	for _, r := range records {
		fmt.Printf("  %s  %10s  %s  %s\n",
			r.Date.Format(transaction.DateLayout),
			r.Amount.StringFixed(2),
			orEmpty(r.Category),
			orEmpty(r.Description))
	}
}
