package employee

import (
	"context"
)

// SchemaManager provisions and tears down the keyspace, user-defined type and table.
// Creation is idempotent, calling it against an already provisioned cluster succeeds.
type SchemaManager interface {
	// CreateKeyspace creates the keyspace if it does not exist.
	CreateKeyspace(context.Context) error
	// CreateType creates the "emp" user-defined type if it does not exist.
	CreateType(context.Context) error
	// CreateTable creates the row table if it does not exist.
	CreateTable(context.Context) error
	// DropKeyspace drops the keyspace and everything in it, if it exists.
	DropKeyspace(context.Context) error
}

// RowRepository specifies the row CRUD operations, all keyed by Row.ID.
type RowRepository interface {
	// Add inserts rows. Cassandra inserts are upserts, so adding an existing ID overwrites it.
	Add(context.Context, ...Row) error
	// Update sets the User of each row, matched by ID.
	Update(context.Context, ...Row) error
	// Remove deletes rows with the given IDs. Missing IDs are not an error.
	Remove(context.Context, ...int32) error
	// Get fetches rows with the given IDs. Missing IDs are omitted from the result.
	Get(context.Context, ...int32) ([]Row, error)
	// GetAll fetches every row of the table.
	GetAll(context.Context) ([]Row, error)
}
