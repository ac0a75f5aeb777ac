// cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/database"
	"github.com/gewnthar/flightqa/logger"
)

var (
	cfgFile string
	verbose bool
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flightqa",
		Short: "Synthetic flight dataset generator with injected data-quality defects",
		Long: `flightqa generates a reproducible table of flight operations, corrupts it with a
fixed set of data-quality defects (nulls, duplicate keys, negative and overcapacity
passenger counts, unprofitable flights, extreme delays) and writes it as CSV for
exercising a data validation suite.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			if err := config.LoadConfig(cfgFile); err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			logCfg := config.AppConfig.Log
			if verbose {
				logCfg.Level = "debug"
			}
			return logger.Setup(logCfg, cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newLoadCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// openDatabase connects when the database is enabled in config. The returned func closes it.
func openDatabase(ctx context.Context, required bool) (func(), error) {
	cfg := config.AppConfig.Database
	if !cfg.Enabled {
		if required {
			return nil, fmt.Errorf("database is not enabled; set database.enabled or %sDB_ENABLED", config.EnvPrefix)
		}
		return func() {}, nil
	}
	if err := database.InitDB(ctx, cfg); err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.CloseDB()
		return nil, err
	}
	return database.CloseDB, nil
}
