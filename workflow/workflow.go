// Package workflow runs the fixed employee CRUD statement sequence:
// create keyspace, create type, create table, insert, update, delete, then select and print.
package workflow

import (
	"context"
	"fmt"
	"io"
	log "log/slog"

	"github.com/google/uuid"

	"github.com/sharedcode/employee"
)

var (
	// SampleRow is the row inserted by the run.
	SampleRow = employee.Row{ID: 3, User: employee.User{Name: "Ayush", Age: 25}}
	// UpdatedUser replaces SampleRow's user in the update step.
	UpdatedUser = employee.User{Name: "Miral", Age: 24}
)

// Step is a named unit of the run. Code classifies the error when Do fails.
type Step struct {
	Name string
	Code employee.ErrorCode
	Do   func(ctx context.Context) error
}

// Runner executes the steps sequentially on the calling goroutine.
type Runner struct {
	schema employee.SchemaManager
	rows   employee.RowRepository
	out    io.Writer
	id     uuid.UUID
	logger *log.Logger
}

// NewRunner returns a Runner that prints selected rows to out.
func NewRunner(schema employee.SchemaManager, rows employee.RowRepository, out io.Writer) *Runner {
	id := uuid.New()
	return &Runner{
		schema: schema,
		rows:   rows,
		out:    out,
		id:     id,
		logger: log.Default().With("run_id", id.String()),
	}
}

// ID returns the run id attached to every log line of this run.
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// Steps returns the run's steps in execution order.
func (r *Runner) Steps() []Step {
	return []Step{
		{Name: "create keyspace", Code: employee.SchemaFailure, Do: r.schema.CreateKeyspace},
		{Name: "create type", Code: employee.SchemaFailure, Do: r.schema.CreateType},
		{Name: "create table", Code: employee.SchemaFailure, Do: r.schema.CreateTable},
		{Name: "insert row", Code: employee.WriteFailure, Do: func(ctx context.Context) error {
			return r.rows.Add(ctx, SampleRow)
		}},
		{Name: "update row", Code: employee.WriteFailure, Do: func(ctx context.Context) error {
			return r.rows.Update(ctx, employee.Row{ID: SampleRow.ID, User: UpdatedUser})
		}},
		{Name: "delete row", Code: employee.WriteFailure, Do: func(ctx context.Context) error {
			return r.rows.Remove(ctx, SampleRow.ID)
		}},
		{Name: "select rows", Code: employee.ReadFailure, Do: r.selectRows},
	}
}

func (r *Runner) selectRows(ctx context.Context) error {
	rows, err := r.rows.GetAll(ctx)
	if err != nil {
		return err
	}
	r.logger.Debug("Selected rows", "count", len(rows))
	return PrintRows(r.out, rows)
}

// Run executes the steps in order and stops at the first failure, returning it as employee.Error.
// The failure is only logged at Debug, reporting it is left to the caller.
func (r *Runner) Run(ctx context.Context) error {
	steps := r.Steps()
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return employee.Error{Code: s.Code, Err: err, UserData: s.Name}
		}
		r.logger.Debug("Running step", "step", s.Name)
		if err := s.Do(ctx); err != nil {
			r.logger.Debug("Step failed", "step", s.Name, "error", err)
			return employee.Error{Code: s.Code, Err: err, UserData: s.Name}
		}
	}
	r.logger.Info("Employee CRUD run completed", "steps", len(steps))
	return nil
}

// PrintRows writes one row per line.
func PrintRows(w io.Writer, rows []employee.Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
