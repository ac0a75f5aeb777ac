// cli/summary.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/services"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [path]",
		Short: "Count the data-quality anomalies in an existing dataset file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.AppConfig.Output.Path
			if len(args) == 1 {
				path = args[0]
			}
			summary, err := services.SummarizeFile(path)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), path, summary)
			return nil
		},
	}
}
