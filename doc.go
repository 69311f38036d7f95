// Package employee defines the row shape, repository interfaces and shared helpers used by the
// employee CRUD program. The program provisions a keyspace, a user-defined type and a table in a
// Cassandra cluster, then inserts, updates, deletes and lists a single record shape.
//
// Concrete backends live in subpackages: cassandra (gocql based) and mocks (in-memory, for tests).
// The fixed statement sequence is driven by the workflow package.
package employee
