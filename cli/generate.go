// cli/generate.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/services"
)

func newGenerateCommand() *cobra.Command {
	var (
		rows           int
		seed           int64
		output         string
		legacySampling bool
		load           bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the flight dataset and write it as CSV",
		Example: `  flightqa generate
  flightqa generate --rows 5000 --seed 7 --output /tmp/flights.csv
  flightqa generate --legacy-sampling --load`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.AppConfig
			req := services.GenerateRequest{
				Rows:           cfg.Generator.Rows,
				Seed:           cfg.Generator.Seed,
				Epoch:          cfg.Generator.Epoch,
				LegacySampling: cfg.Generator.LegacySampling,
				OutputPath:     cfg.Output.Path,
				Load:           load,
			}
			flags := cmd.Flags()
			if flags.Changed("rows") {
				req.Rows = rows
			}
			if flags.Changed("seed") {
				req.Seed = seed
			}
			if flags.Changed("output") {
				req.OutputPath = output
			}
			if flags.Changed("legacy-sampling") {
				req.LegacySampling = legacySampling
			}

			closeDB, err := openDatabase(cmd.Context(), load)
			if err != nil {
				return err
			}
			defer closeDB()

			result, err := services.GenerateDataset(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderGenerationResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 1000, "Number of flight records to generate")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 42, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination CSV path (directory must exist)")
	cmd.Flags().BoolVar(&legacySampling, "legacy-sampling", false, "Sample negative/overcapacity rows with replacement")
	cmd.Flags().BoolVar(&load, "load", false, "Also load the batch into the database")
	return cmd
}
