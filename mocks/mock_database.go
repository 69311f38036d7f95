// Package mocks contains in-memory stand-ins for the Cassandra backed employee interfaces.
package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/sharedcode/employee"
)

// MockDatabase is an in-memory implementation of both employee.SchemaManager and
// employee.RowRepository. Like a real cluster it rejects writes and reads until the
// keyspace, type and table exist, and like Cassandra, Add and Update are both upserts.
type MockDatabase struct {
	keyspace bool
	udt      bool
	table    bool
	lookup   map[int32]employee.Row

	// Calls records every method invoked, in order.
	Calls []string
	// FailOn makes the named method (e.g. "Update") return the mapped error.
	FailOn map[string]error
}

// NewMockDatabase returns an empty, unprovisioned mock database.
func NewMockDatabase() *MockDatabase {
	return &MockDatabase{
		lookup: make(map[int32]employee.Row),
		FailOn: make(map[string]error),
	}
}

func (m *MockDatabase) call(name string) error {
	m.Calls = append(m.Calls, name)
	return m.FailOn[name]
}

func (m *MockDatabase) CreateKeyspace(ctx context.Context) error {
	if err := m.call("CreateKeyspace"); err != nil {
		return err
	}
	m.keyspace = true
	return nil
}

func (m *MockDatabase) CreateType(ctx context.Context) error {
	if err := m.call("CreateType"); err != nil {
		return err
	}
	if !m.keyspace {
		return fmt.Errorf("keyspace does not exist")
	}
	m.udt = true
	return nil
}

func (m *MockDatabase) CreateTable(ctx context.Context) error {
	if err := m.call("CreateTable"); err != nil {
		return err
	}
	if !m.udt {
		return fmt.Errorf("unknown type emp")
	}
	m.table = true
	return nil
}

func (m *MockDatabase) DropKeyspace(ctx context.Context) error {
	if err := m.call("DropKeyspace"); err != nil {
		return err
	}
	m.keyspace, m.udt, m.table = false, false, false
	m.lookup = make(map[int32]employee.Row)
	return nil
}

func (m *MockDatabase) checkTable() error {
	if !m.table {
		return fmt.Errorf("table knoldus does not exist")
	}
	return nil
}

func (m *MockDatabase) Add(ctx context.Context, rows ...employee.Row) error {
	if err := m.call("Add"); err != nil {
		return err
	}
	if err := m.checkTable(); err != nil {
		return err
	}
	for _, r := range rows {
		m.lookup[r.ID] = r
	}
	return nil
}

func (m *MockDatabase) Update(ctx context.Context, rows ...employee.Row) error {
	if err := m.call("Update"); err != nil {
		return err
	}
	if err := m.checkTable(); err != nil {
		return err
	}
	for _, r := range rows {
		m.lookup[r.ID] = r
	}
	return nil
}

func (m *MockDatabase) Remove(ctx context.Context, ids ...int32) error {
	if err := m.call("Remove"); err != nil {
		return err
	}
	if err := m.checkTable(); err != nil {
		return err
	}
	for _, id := range ids {
		delete(m.lookup, id)
	}
	return nil
}

func (m *MockDatabase) Get(ctx context.Context, ids ...int32) ([]employee.Row, error) {
	if err := m.call("Get"); err != nil {
		return nil, err
	}
	if err := m.checkTable(); err != nil {
		return nil, err
	}
	var rows []employee.Row
	for _, id := range ids {
		if r, ok := m.lookup[id]; ok {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

// GetAll returns rows ordered by ID.
func (m *MockDatabase) GetAll(ctx context.Context) ([]employee.Row, error) {
	if err := m.call("GetAll"); err != nil {
		return nil, err
	}
	if err := m.checkTable(); err != nil {
		return nil, err
	}
	rows := make([]employee.Row, 0, len(m.lookup))
	for _, r := range m.lookup {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}
