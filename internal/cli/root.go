package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/spf13/cobra"

	"github.com/sharedcode/employee"
	"github.com/sharedcode/employee/cassandra"
)

// RootOptions holds global flags for all commands. Defaults match the program's fixed target.
type RootOptions struct {
	Hosts          []string
	Keyspace       string
	Consistency    string
	ConnectTimeout time.Duration
	Compression    bool
	Verbose        bool
}

// CassandraConfig maps the flags onto a cassandra.Config. An empty keyspace falls back to the default.
func (o *RootOptions) CassandraConfig() (cassandra.Config, error) {
	if o.Keyspace != "" {
		if err := cassandra.ValidateKeyspace(o.Keyspace); err != nil {
			return cassandra.Config{}, err
		}
	}
	c, err := gocql.ParseConsistencyWrapper(strings.ToUpper(o.Consistency))
	if err != nil {
		return cassandra.Config{}, fmt.Errorf("invalid consistency %q: %w", o.Consistency, err)
	}
	return cassandra.Config{
		ClusterHosts:      o.Hosts,
		Keyspace:          o.Keyspace,
		Consistency:       c,
		ConnectionTimeout: o.ConnectTimeout,
		Compression:       o.Compression,
	}, nil
}

// NewRootCommand creates the root command. Run without a subcommand it executes the CRUD sequence.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "employee_crud",
		Short: "Provision the employee schema and run insert, update, delete and select against it",
		Long: `Connects to a Cassandra cluster, creates the employee keyspace, the "emp" user-defined
type and the knoldus table, then inserts row 3, updates it, deletes it and prints
every remaining row to stdout. Any failure stops the run with exit status 1.

Example:
  employee_crud
  employee_crud --hosts 10.0.0.5:9042 --keyspace hr --consistency ONE -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				employee.SetLogLevel(slog.LevelDebug)
			}
			_, err := opts.CassandraConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringSliceVar(&opts.Hosts, "hosts", []string{cassandra.DefaultHost}, "cluster contact points (host[:port])")
	cmd.PersistentFlags().StringVar(&opts.Keyspace, "keyspace", cassandra.DefaultKeyspace, "keyspace holding the employee type and table")
	cmd.PersistentFlags().StringVar(&opts.Consistency, "consistency", "LOCAL_QUORUM", "default query consistency level")
	cmd.PersistentFlags().DurationVar(&opts.ConnectTimeout, "connect-timeout", 0, "session connect timeout (0 keeps the driver default)")
	cmd.PersistentFlags().BoolVar(&opts.Compression, "compression", false, "enable snappy frame compression")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCleanCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
