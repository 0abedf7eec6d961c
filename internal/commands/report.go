package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/skarbnik-dev/skarbnik/internal/report"
	"github.com/skarbnik-dev/skarbnik/internal/store"
)

func newReportCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the ledger by sign, category and camp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			filter, err := parseFilter(from, to)
			if err != nil {
				return err
			}

			txns, err := store.NewService(cfg.Data.Dir).All()
			if err != nil {
				return err
			}

			s := report.Summarize(txns, filter)

			fmt.Printf("Transactions: %d\n", s.Count)
			fmt.Printf("Income:   %s %s\n", s.Income.StringFixed(2), cfg.Club.HomeCurrency)
			fmt.Printf("Expenses: %s %s\n", s.Expenses.StringFixed(2), cfg.Club.HomeCurrency)
			fmt.Printf("Net:      %s %s\n", s.Net.StringFixed(2), cfg.Club.HomeCurrency)

			printBreakdown("By category", s.ByCategory, cfg.Club.HomeCurrency)
			printBreakdown("By camp", s.ByCamp, cfg.Club.HomeCurrency)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	return cmd
}

func parseFilter(from, to string) (report.Filter, error) {
	var f report.Filter
	var err error

	if from != "" {
		f.From, err = time.Parse("2006-01-02", from)
		if err != nil {
			return report.Filter{}, fmt.Errorf("parsing --from: %w", err)
		}
	}
	if to != "" {
		f.To, err = time.Parse("2006-01-02", to)
		if err != nil {
			return report.Filter{}, fmt.Errorf("parsing --to: %w", err)
		}
	}
	return f, nil
}

func printBreakdown(title string, totals map[string]decimal.Decimal, currency string) {
	if len(totals) == 0 {
		return
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n%s:\n", title)
	for _, name := range names {
		fmt.Printf("  %-30s %s %s\n", name, totals[name].StringFixed(2), currency)
	}
}
