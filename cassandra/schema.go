package cassandra

import (
	"context"
	"fmt"
	log "log/slog"

	"github.com/sharedcode/employee"
)

type schemaManager struct {
	connection *Connection
}

// NewSchemaManager manages the employee keyspace, "emp" type and row table.
// Passing in nil for customConnection uses the global connection.
func NewSchemaManager(customConnection *Connection) employee.SchemaManager {
	return &schemaManager{
		connection: customConnection,
	}
}

func (sm *schemaManager) getConnection() (*Connection, error) {
	if sm.connection != nil {
		return sm.connection, nil
	}
	return GetGlobalConnection()
}

func (sm *schemaManager) exec(ctx context.Context, statement string) error {
	conn, err := sm.getConnection()
	if err != nil {
		return err
	}
	log.Debug("Executing schema statement", "statement", statement)
	qry := conn.Session.Query(statement).WithContext(ctx)
	return apply(qry, conn.Config.ConsistencyBook.Schema).Exec()
}

// CreateKeyspace creates the keyspace with the configured replication clause.
func (sm *schemaManager) CreateKeyspace(ctx context.Context) error {
	conn, err := sm.getConnection()
	if err != nil {
		return err
	}
	if err := sm.exec(ctx, createKeyspaceStatement(conn.Config.Keyspace, conn.Config.ReplicationClause)); err != nil {
		return fmt.Errorf("failed to create keyspace %s: %w", conn.Config.Keyspace, err)
	}
	return nil
}

// CreateType creates the "emp" user-defined type.
func (sm *schemaManager) CreateType(ctx context.Context) error {
	conn, err := sm.getConnection()
	if err != nil {
		return err
	}
	if err := sm.exec(ctx, createTypeStatement(conn.Config.Keyspace)); err != nil {
		return fmt.Errorf("failed to create type %s.%s: %w", conn.Config.Keyspace, UserTypeName, err)
	}
	return nil
}

// CreateTable creates the row table. The type must exist first.
func (sm *schemaManager) CreateTable(ctx context.Context) error {
	conn, err := sm.getConnection()
	if err != nil {
		return err
	}
	if err := sm.exec(ctx, createTableStatement(conn.Config.Keyspace)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", rowTable(conn.Config.Keyspace), err)
	}
	return nil
}

// DropKeyspace drops the keyspace, its type and its table.
func (sm *schemaManager) DropKeyspace(ctx context.Context) error {
	conn, err := sm.getConnection()
	if err != nil {
		return err
	}
	if err := sm.exec(ctx, dropKeyspaceStatement(conn.Config.Keyspace)); err != nil {
		return fmt.Errorf("failed to drop keyspace %s: %w", conn.Config.Keyspace, err)
	}
	return nil
}
