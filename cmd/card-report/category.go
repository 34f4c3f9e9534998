package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/card-report/pkg/report"
	"github.com/example/card-report/pkg/transaction"
)

// reportWindowDays is the length of the trailing window the category
// report covers.
const reportWindowDays = 90

var (
	reportCategory string
	reportDate     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Rolling category spend report",
	Long: `Report totals the spend for one category over the trailing 90 days
ending at the given date and writes the result to reports.json.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCategory, "category", "", "category to total")
	reportCmd.Flags().StringVar(&reportDate, "date", "", `report end date, "DD.MM.YYYY" (default: today)`)
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := newAppEnv()
	if err != nil {
		return err
	}

	category := reportCategory
	if category == "" && !cmd.Flags().Changed("category") {
		category = prompt("Category")
	}

	dateText := reportDate
	if dateText == "" && !cmd.Flags().Changed("date") {
		dateText = prompt("End date (DD.MM.YYYY, empty for today)")
	}
	ref := time.Now()
	if dateText != "" {
		ref, err = time.Parse(promptDateLayout, dateText)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateText, err)
		}
	}

	records, err := app.loader.Load(app.cfg.DataFile)
	if err != nil {
		return err
	}

	spend, err := report.AggregateCategory(records, category, transaction.TrailingWindow(ref, reportWindowDays))
	if err != nil {
		return err
	}
	if err := app.out.Write("reports.json", spend); err != nil {
		return err
	}

	fmt.Printf("%s: %s over the %d days ending %s\n",
		spend.Category, spend.Total.StringFixed(2), reportWindowDays, ref.Format(promptDateLayout))
	return nil
}
