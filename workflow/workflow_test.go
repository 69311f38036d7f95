package workflow

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedcode/employee"
	"github.com/sharedcode/employee/mocks"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRunner_Run_Sequence(t *testing.T) {
	ctx := context.Background()
	db := mocks.NewMockDatabase()
	var out bytes.Buffer

	r := NewRunner(db, db, &out)
	require.NoError(t, r.Run(ctx))

	assert.Equal(t, []string{"CreateKeyspace", "CreateType", "CreateTable", "Add", "Update", "Remove", "GetAll"}, db.Calls)
	assert.Empty(t, out.String(), "the deleted row must not be printed")

	rows, err := db.Get(ctx, SampleRow.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRunner_Run_Twice(t *testing.T) {
	ctx := context.Background()
	db := mocks.NewMockDatabase()

	require.NoError(t, NewRunner(db, db, &bytes.Buffer{}).Run(ctx))
	require.NoError(t, NewRunner(db, db, &bytes.Buffer{}).Run(ctx))
}

func TestRunner_Run_PrintsOtherRows(t *testing.T) {
	ctx := context.Background()
	db := mocks.NewMockDatabase()
	require.NoError(t, db.CreateKeyspace(ctx))
	require.NoError(t, db.CreateType(ctx))
	require.NoError(t, db.CreateTable(ctx))
	require.NoError(t, db.Add(ctx,
		employee.Row{ID: 7, User: employee.User{Name: "Keya", Age: 31}},
		employee.Row{ID: 1, User: employee.User{Name: "Ravi", Age: 40}},
	))

	var out bytes.Buffer
	require.NoError(t, NewRunner(db, db, &out).Run(ctx))

	newGoldie(t).Assert(t, "run_with_existing_rows", out.Bytes())
}

func TestRunner_Run_AbortsOnFirstFailure(t *testing.T) {
	tests := []struct {
		failOn    string
		step      string
		code      employee.ErrorCode
		wantCalls int
	}{
		{"CreateKeyspace", "create keyspace", employee.SchemaFailure, 1},
		{"CreateTable", "create table", employee.SchemaFailure, 3},
		{"Add", "insert row", employee.WriteFailure, 4},
		{"Update", "update row", employee.WriteFailure, 5},
		{"Remove", "delete row", employee.WriteFailure, 6},
		{"GetAll", "select rows", employee.ReadFailure, 7},
	}
	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			boom := errors.New("boom")
			db := mocks.NewMockDatabase()
			db.FailOn[tt.failOn] = boom
			var out bytes.Buffer

			err := NewRunner(db, db, &out).Run(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)

			var e employee.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.step, e.UserData)
			assert.Len(t, db.Calls, tt.wantCalls, "no step may run after a failure")
			assert.Empty(t, out.String())
		})
	}
}

func TestRunner_Run_UpdateFailureLeavesInsertedRow(t *testing.T) {
	ctx := context.Background()
	db := mocks.NewMockDatabase()
	db.FailOn["Update"] = errors.New("write timeout")

	require.Error(t, NewRunner(db, db, &bytes.Buffer{}).Run(ctx))

	rows, err := db.Get(ctx, SampleRow.ID)
	require.NoError(t, err)
	assert.Equal(t, []employee.Row{SampleRow}, rows)
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	db := mocks.NewMockDatabase()

	err := NewRunner(db, db, &bytes.Buffer{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, db.Calls)
}

func TestRunner_ID(t *testing.T) {
	db := mocks.NewMockDatabase()
	a := NewRunner(db, db, &bytes.Buffer{})
	b := NewRunner(db, db, &bytes.Buffer{})
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRunner_Steps_Order(t *testing.T) {
	db := mocks.NewMockDatabase()
	var names []string
	for _, s := range NewRunner(db, db, &bytes.Buffer{}).Steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"create keyspace", "create type", "create table",
		"insert row", "update row", "delete row", "select rows",
	}, names)
}

func TestPrintRows(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintRows(&out, []employee.Row{
		SampleRow,
		{ID: 3, User: UpdatedUser},
	}))
	newGoldie(t).Assert(t, "print_rows", out.Bytes())
}

func TestRunner_Run_FailureNotLoggedAtInfo(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })
	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))

	db := mocks.NewMockDatabase()
	db.FailOn["Add"] = errors.New("unavailable")
	err := NewRunner(db, db, &bytes.Buffer{}).Run(context.Background())

	require.Error(t, err)
	assert.Empty(t, logs.String(), "the caller reports the returned error, the runner must not log it again")
}
