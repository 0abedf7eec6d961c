package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skarbnik-dev/skarbnik/internal/importer"
	"github.com/skarbnik-dev/skarbnik/internal/logger"
	"github.com/skarbnik-dev/skarbnik/internal/normalize"
	"github.com/skarbnik-dev/skarbnik/internal/rates"
	"github.com/skarbnik-dev/skarbnik/internal/store"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import bank statement CSV exports into the ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log := logger.New()
			resolver := rates.NewResolver(rates.NewClient(cfg.Rates.BaseURL), cfg.Rates.LookbackDays, log)
			imp := importer.New(normalize.New(resolver), log)
			svc := store.NewService(cfg.Data.Dir)

			// One resolver instance across all files so rate lookups stay warm.
			for _, path := range args {
				txns, err := imp.ImportFile(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}

				stored, err := svc.BulkInsert(txns)
				if err != nil {
					return fmt.Errorf("storing %s: %w", path, err)
				}

				fmt.Printf("Imported %d transactions from %s\n", len(stored), path)
			}
			return nil
		},
	}
}
