package cli

import (
	"context"
	"io"

	"github.com/sharedcode/employee"
	"github.com/sharedcode/employee/cassandra"
	"github.com/sharedcode/employee/workflow"
)

func openConnection(opts *RootOptions) (*cassandra.Connection, error) {
	cfg, err := opts.CassandraConfig()
	if err != nil {
		return nil, err
	}
	conn, err := cassandra.OpenConnection(cfg)
	if err != nil {
		return nil, employee.Error{Code: employee.ConnectionFailure, Err: err, UserData: cfg.ClusterHosts}
	}
	return conn, nil
}

func runSequence(ctx context.Context, opts *RootOptions, out io.Writer) error {
	conn, err := openConnection(opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	return workflow.NewRunner(cassandra.NewSchemaManager(conn), cassandra.NewRowRepository(conn), out).Run(ctx)
}
