package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	// Snapshot files carry plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "card-report",
	Short: "Summarize and search bank-card transactions",
	Long: `Card Report is a tool for turning a bank-card transaction export
into a dashboard snapshot, a keyword search over categories and
descriptions, and a rolling category spend report.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Card Report v1.0.0")
		fmt.Println("Use --help for available commands")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the configuration file")
	rootCmd.AddCommand(dashboardCmd, searchCmd, reportCmd)
}
