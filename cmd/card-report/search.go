package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/card-report/pkg/transaction"
)

var searchQuery string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search transactions by keyword",
	Long: `Search matches the query against transaction categories and
descriptions, case-insensitively, and writes the matches to
services.json.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "text to look for in category and description")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app, err := newAppEnv()
	if err != nil {
		return err
	}

	query := searchQuery
	if query == "" && !cmd.Flags().Changed("query") {
		query = prompt("Search")
	}

	records, err := app.loader.Load(app.cfg.DataFile)
	if err != nil {
		return err
	}

	matches := transaction.Search(records, query)
	if matches == nil {
		matches = []transaction.Transaction{}
	}
	if err := app.out.Write("services.json", matches); err != nil {
		return err
	}

	fmt.Printf("Found %d transactions\n", len(matches))
	printTransactions(matches)
	return nil
}
