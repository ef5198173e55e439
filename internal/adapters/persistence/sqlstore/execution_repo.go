package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

const (
	executionColumns = "id, process_id, step_id, user_id, status, started_at, completed_at, remarks, created_at, updated_at"

	insertExecutionSQL = `INSERT INTO executions (process_id, step_id, user_id, status, started_at, completed_at, remarks, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

	upsertExecutionSQL = `INSERT INTO executions (id, process_id, step_id, user_id, status, started_at, completed_at, remarks, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	step_id = excluded.step_id,
	user_id = excluded.user_id,
	status = excluded.status,
	started_at = excluded.started_at,
	completed_at = excluded.completed_at,
	remarks = excluded.remarks,
	updated_at = excluded.updated_at`
)

// ExecutionRepository stores process executions.
type ExecutionRepository struct {
	store *Store
}

var _ ports.ExecutionRepository = (*ExecutionRepository)(nil)

// NewExecutionRepository returns a repository backed by store.
func NewExecutionRepository(store *Store) *ExecutionRepository {
	return &ExecutionRepository{store: store}
}

// ListByProcess returns the executions of processID ordered by identity.
func (r *ExecutionRepository) ListByProcess(ctx context.Context, processID int64) ([]*process.Execution, error) {
	var out []*process.Execution

	err := r.store.observe(ctx, tableExec, "list", func(ctx context.Context) error {
		var err error
		out, err = r.query(ctx,
			"SELECT "+executionColumns+" FROM executions WHERE process_id = ? ORDER BY id", processID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing executions of process %d: %w", processID, err)
	}
	return out, nil
}

func (r *ExecutionRepository) Get(ctx context.Context, id int64) (*process.Execution, error) {
	var out *process.Execution

	err := r.store.observe(ctx, tableExec, "get", func(ctx context.Context) error {
		found, err := r.query(ctx, "SELECT "+executionColumns+" FROM executions WHERE id = ?", id)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return domain.ErrNotFound
		}
		out = found[0]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting execution %d: %w", id, err)
	}
	return out, nil
}

func (r *ExecutionRepository) Save(ctx context.Context, e *process.Execution) error {
	if e == nil {
		return &domain.MissingReferenceError{Name: "execution"}
	}

	d := r.store.dialect
	st := e.State()

	var newID int64
	err := r.store.observe(ctx, tableExec, "save", func(ctx context.Context) error {
		if st.ID != 0 {
			_, err := r.store.db.ExecContext(ctx, d.rebind(upsertExecutionSQL),
				st.ID, st.ProcessID, st.StepID, nullInt64(st.UserID), string(st.Status),
				nullTime(st.StartedAt), nullTime(st.CompletedAt), nullString(st.Remarks),
				st.CreatedAt, nullTime(st.UpdatedAt),
			)
			return err
		}
		return r.store.db.QueryRowContext(ctx, d.rebind(insertExecutionSQL),
			st.ProcessID, st.StepID, nullInt64(st.UserID), string(st.Status),
			nullTime(st.StartedAt), nullTime(st.CompletedAt), nullString(st.Remarks),
			st.CreatedAt, nullTime(st.UpdatedAt),
		).Scan(&newID)
	})
	if err != nil {
		return fmt.Errorf("saving execution of step %d: %w", st.StepID, err)
	}

	if newID != 0 {
		if err := e.AssignID(newID); err != nil {
			return fmt.Errorf("saving execution of step %d: %w", st.StepID, err)
		}
	}
	return nil
}

func (r *ExecutionRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.observe(ctx, tableExec, "delete", func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx, r.store.dialect.rebind("DELETE FROM executions WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("deleting execution %d: %w", id, err)
	}
	return nil
}

func (r *ExecutionRepository) query(ctx context.Context, query string, args ...any) ([]*process.Execution, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*process.Execution
	for rows.Next() {
		var (
			st          process.ExecutionState
			status      string
			userID      sql.NullInt64
			startedAt   sql.NullTime
			completedAt sql.NullTime
			remarks     sql.NullString
			updatedAt   sql.NullTime
		)
		if err := rows.Scan(&st.ID, &st.ProcessID, &st.StepID, &userID, &status,
			&startedAt, &completedAt, &remarks, &st.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning execution: %w", err)
		}
		st.Status = process.Status(status)
		st.UserID = int64Ptr(userID)
		st.StartedAt = timePtr(startedAt)
		st.CompletedAt = timePtr(completedAt)
		st.Remarks = stringPtr(remarks)
		st.UpdatedAt = timePtr(updatedAt)
		out = append(out, process.RestoreExecution(st, r.store.clock))
	}
	return out, rows.Err()
}
