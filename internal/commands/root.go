package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skarbnik-dev/skarbnik/internal/buildinfo"
	"github.com/skarbnik-dev/skarbnik/internal/config"
)

// configFile is the project configuration in the working directory.
const configFile = "skarbnik.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "skarbnik",
		Short:   "Camp-club finance tracking from bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSetCategoryCommand())
	rootCmd.AddCommand(newSetCampCommand())
	rootCmd.AddCommand(newAddCategoryCommand())
	rootCmd.AddCommand(newAddCampCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newRateCommand())

	return rootCmd
}

// loadConfig reads skarbnik.yaml from the working directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s (run 'skarbnik init' first): %w", configFile, err)
	}
	return cfg, nil
}
