package cassandra

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/sharedcode/employee"
)

type rowRepository struct {
	connection *Connection
}

// NewRowRepository manages employee rows in the Cassandra row table.
// Passing in nil for customConnection uses the global connection.
func NewRowRepository(customConnection *Connection) employee.RowRepository {
	return &rowRepository{
		connection: customConnection,
	}
}

func (rr *rowRepository) getConnection() (*Connection, error) {
	if rr.connection != nil {
		return rr.connection, nil
	}
	return GetGlobalConnection()
}

// Add inserts the rows, one statement each.
func (rr *rowRepository) Add(ctx context.Context, rows ...employee.Row) error {
	conn, err := rr.getConnection()
	if err != nil {
		return err
	}
	for _, r := range rows {
		statement, args, err := insertRowQuery(conn.Config.Keyspace, r)
		if err != nil {
			return err
		}
		qry := conn.Session.Query(statement, args...).WithContext(ctx)
		if err := apply(qry, conn.Config.ConsistencyBook.RowAdd).Exec(); err != nil {
			return fmt.Errorf("cassandra row add failed for id %d: %w", r.ID, err)
		}
	}
	return nil
}

// Update replaces the user value of each row, matched by ID.
func (rr *rowRepository) Update(ctx context.Context, rows ...employee.Row) error {
	conn, err := rr.getConnection()
	if err != nil {
		return err
	}
	for _, r := range rows {
		statement, args, err := updateRowQuery(conn.Config.Keyspace, r)
		if err != nil {
			return err
		}
		qry := conn.Session.Query(statement, args...).WithContext(ctx)
		if err := apply(qry, conn.Config.ConsistencyBook.RowUpdate).Exec(); err != nil {
			return fmt.Errorf("cassandra row update failed for id %d: %w", r.ID, err)
		}
	}
	return nil
}

// Remove deletes rows by ID.
func (rr *rowRepository) Remove(ctx context.Context, ids ...int32) error {
	conn, err := rr.getConnection()
	if err != nil {
		return err
	}
	for _, id := range ids {
		statement, args, err := deleteRowQuery(conn.Config.Keyspace, id)
		if err != nil {
			return err
		}
		qry := conn.Session.Query(statement, args...).WithContext(ctx)
		if err := apply(qry, conn.Config.ConsistencyBook.RowRemove).Exec(); err != nil {
			return fmt.Errorf("cassandra row remove failed for id %d: %w", id, err)
		}
	}
	return nil
}

// Get fetches the rows with the given IDs in a single IN query.
func (rr *rowRepository) Get(ctx context.Context, ids ...int32) ([]employee.Row, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	conn, err := rr.getConnection()
	if err != nil {
		return nil, err
	}
	statement, args, err := selectRowsQuery(conn.Config.Keyspace, ids)
	if err != nil {
		return nil, err
	}
	qry := conn.Session.Query(statement, args...).WithContext(ctx)
	rows, err := scanRows(apply(qry, conn.Config.ConsistencyBook.RowGet).Iter())
	if err != nil {
		return nil, fmt.Errorf("cassandra row get failed: %w", err)
	}
	return rows, nil
}

// GetAll fetches every row of the table.
func (rr *rowRepository) GetAll(ctx context.Context) ([]employee.Row, error) {
	conn, err := rr.getConnection()
	if err != nil {
		return nil, err
	}
	statement, args, err := selectAllRowsQuery(conn.Config.Keyspace)
	if err != nil {
		return nil, err
	}
	qry := conn.Session.Query(statement, args...).WithContext(ctx)
	rows, err := scanRows(apply(qry, conn.Config.ConsistencyBook.RowGet).Iter())
	if err != nil {
		return nil, fmt.Errorf("cassandra row get all failed: %w", err)
	}
	return rows, nil
}

func scanRows(iter *gocql.Iter) ([]employee.Row, error) {
	var rows []employee.Row
	var id int32
	var u user
	for iter.Scan(&id, &u) {
		rows = append(rows, employee.Row{ID: id, User: employee.User(u)})
		u = user{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return rows, nil
}
