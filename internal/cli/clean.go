package cli

import (
	"fmt"
	log "log/slog"

	"github.com/spf13/cobra"

	"github.com/sharedcode/employee"
	"github.com/sharedcode/employee/cassandra"
)

// NewCleanCommand creates the clean command, which drops the keyspace.
func NewCleanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clean",
		Short:         "Drop the employee keyspace with its type and table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openConnection(rootOpts)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := cassandra.NewSchemaManager(conn).DropKeyspace(cmd.Context()); err != nil {
				return employee.Error{Code: employee.SchemaFailure, Err: err, UserData: "drop keyspace"}
			}
			log.Info("Dropped keyspace", "keyspace", conn.Config.Keyspace)
			fmt.Fprintf(cmd.OutOrStdout(), "keyspace %s dropped\n", conn.Config.Keyspace)
			return nil
		},
	}
}
