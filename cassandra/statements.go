package cassandra

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sharedcode/employee"
)

const (
	// UserTypeName is the user-defined type holding employee.User.
	UserTypeName = "emp"
	// RowTableName is the table holding employee.Row.
	RowTableName = "knoldus"
)

// DDL takes identifiers, which CQL cannot bind, so it is formatted directly.
// The keyspace is validated by Config.withDefaults before it gets here.

func createKeyspaceStatement(keyspace, replicationClause string) string {
	return fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = %s;", keyspace, replicationClause)
}

func createTypeStatement(keyspace string) string {
	return fmt.Sprintf("CREATE TYPE IF NOT EXISTS %s.%s (name text, age int);", keyspace, UserTypeName)
}

func createTableStatement(keyspace string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (id int PRIMARY KEY, user frozen<%s.%s>);",
		keyspace, RowTableName, keyspace, UserTypeName)
}

func dropKeyspaceStatement(keyspace string) string {
	return fmt.Sprintf("DROP KEYSPACE IF EXISTS %s;", keyspace)
}

func rowTable(keyspace string) string {
	return keyspace + "." + RowTableName
}

func insertRowQuery(keyspace string, r employee.Row) (string, []any, error) {
	return sq.Insert(rowTable(keyspace)).
		Columns("id", "user").
		Values(r.ID, user(r.User)).
		ToSql()
}

func updateRowQuery(keyspace string, r employee.Row) (string, []any, error) {
	return sq.Update(rowTable(keyspace)).
		Set("user", user(r.User)).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
}

func deleteRowQuery(keyspace string, id int32) (string, []any, error) {
	return sq.Delete(rowTable(keyspace)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectAllRowsQuery(keyspace string) (string, []any, error) {
	return sq.Select("id", "user").
		From(rowTable(keyspace)).
		ToSql()
}

// selectRowsQuery restricts by partition key with IN, which Cassandra allows without filtering.
func selectRowsQuery(keyspace string, ids []int32) (string, []any, error) {
	return sq.Select("id", "user").
		From(rowTable(keyspace)).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
