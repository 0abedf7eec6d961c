package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skarbnik-dev/skarbnik/internal/logger"
	"github.com/skarbnik-dev/skarbnik/internal/model"
	"github.com/skarbnik-dev/skarbnik/internal/rates"
)

func newRateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate DATE [CURRENCY]",
		Short: "Resolve a conversion rate for a date (with lookback)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			date, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("parsing date: %w", err)
			}

			currency := model.CurrencyEUR
			if len(args) > 1 {
				currency = model.Currency(strings.ToUpper(args[1]))
			}

			resolver := rates.NewResolver(rates.NewClient(cfg.Rates.BaseURL), cfg.Rates.LookbackDays, logger.New())
			rate := resolver.Resolve(cmd.Context(), currency, date)

			fmt.Printf("%s %s -> %s: %s\n", args[0], currency, cfg.Club.HomeCurrency, rate.String())
			return nil
		},
	}
}
