// cli/load.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gewnthar/flightqa/config"
	"github.com/gewnthar/flightqa/services"
)

func newLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load [path]",
		Short: "Load an existing dataset file into the database as a new batch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.AppConfig.Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			closeDB, err := openDatabase(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer closeDB()

			loaded, err := services.LoadFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d rows from %s as batch %s\n", loaded.Rows, path, loaded.BatchID)
			return nil
		},
	}
}
