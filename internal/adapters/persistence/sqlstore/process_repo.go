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
	processColumns = "id, name, department_id, description, created_by, last_step_seq, created_at, updated_at"
	stepColumns    = "id, process_id, seq, name, step_order, assigned_role_id, created_at, updated_at"

	insertProcessSQL = `INSERT INTO processes (name, department_id, description, created_by, last_step_seq, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`

	upsertProcessSQL = `INSERT INTO processes (id, name, department_id, description, created_by, last_step_seq, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	department_id = excluded.department_id,
	description = excluded.description,
	created_by = excluded.created_by,
	last_step_seq = excluded.last_step_seq,
	updated_at = excluded.updated_at`

	insertStepSQL = `INSERT INTO process_steps (process_id, seq, name, step_order, assigned_role_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`

	upsertStepSQL = `INSERT INTO process_steps (id, process_id, seq, name, step_order, assigned_role_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	seq = excluded.seq,
	name = excluded.name,
	step_order = excluded.step_order,
	assigned_role_id = excluded.assigned_role_id,
	updated_at = excluded.updated_at`
)

// ProcessRepository stores processes and their steps.
type ProcessRepository struct {
	store *Store
}

var _ ports.ProcessRepository = (*ProcessRepository)(nil)

// NewProcessRepository returns a repository backed by store.
func NewProcessRepository(store *Store) *ProcessRepository {
	return &ProcessRepository{store: store}
}

// List returns every process with its steps, ordered by identity.
func (r *ProcessRepository) List(ctx context.Context) ([]*process.Process, error) {
	var out []*process.Process

	err := r.store.observe(ctx, tableProcesses, "list", func(ctx context.Context) error {
		states, err := r.queryProcesses(ctx, "SELECT "+processColumns+" FROM processes ORDER BY id")
		if err != nil {
			return err
		}
		steps, err := r.querySteps(ctx, "SELECT "+stepColumns+" FROM process_steps ORDER BY process_id, seq, id")
		if err != nil {
			return err
		}

		byProcess := make(map[int64][]process.StepState, len(states))
		for _, st := range steps {
			byProcess[st.ProcessID] = append(byProcess[st.ProcessID], st)
		}

		out = make([]*process.Process, 0, len(states))
		for _, st := range states {
			st.Steps = byProcess[st.ID]
			out = append(out, process.Restore(st, r.store.clock))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	return out, nil
}

// Get returns the process with its steps in sequence order.
func (r *ProcessRepository) Get(ctx context.Context, id int64) (*process.Process, error) {
	var out *process.Process

	err := r.store.observe(ctx, tableProcesses, "get", func(ctx context.Context) error {
		states, err := r.queryProcesses(ctx, "SELECT "+processColumns+" FROM processes WHERE id = ?", id)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			return domain.ErrNotFound
		}

		st := states[0]
		st.Steps, err = r.querySteps(ctx,
			"SELECT "+stepColumns+" FROM process_steps WHERE process_id = ? ORDER BY seq, id", id)
		if err != nil {
			return err
		}
		out = process.Restore(st, r.store.clock)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting process %d: %w", id, err)
	}
	return out, nil
}

// Save writes the process and its steps in one transaction. Identities of
// new rows are assigned to the entities only after the commit succeeded.
func (r *ProcessRepository) Save(ctx context.Context, p *process.Process) error {
	if p == nil {
		return &domain.MissingReferenceError{Name: "process"}
	}

	var assign []func() error
	err := r.store.observe(ctx, tableProcesses, "save", func(ctx context.Context) error {
		return r.store.inTx(ctx, func(tx *sql.Tx) error {
			var err error
			assign, err = r.save(ctx, tx, p)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("saving process %q: %w", p.Name(), err)
	}

	for _, fn := range assign {
		if err := fn(); err != nil {
			return fmt.Errorf("saving process %q: %w", p.Name(), err)
		}
	}
	return nil
}

func (r *ProcessRepository) save(ctx context.Context, tx *sql.Tx, p *process.Process) ([]func() error, error) {
	d := r.store.dialect
	st := p.State()

	var assign []func() error
	processID := st.ID
	if processID == 0 {
		err := tx.QueryRowContext(ctx, d.rebind(insertProcessSQL),
			st.Name, nullInt64(st.DepartmentID), nullString(st.Description), nullInt64(st.CreatedBy),
			st.LastStepSeq, st.CreatedAt, nullTime(st.UpdatedAt),
		).Scan(&processID)
		if err != nil {
			return nil, fmt.Errorf("inserting process: %w", err)
		}
		assign = append(assign, func() error { return p.AssignID(processID) })
	} else {
		_, err := tx.ExecContext(ctx, d.rebind(upsertProcessSQL),
			st.ID, st.Name, nullInt64(st.DepartmentID), nullString(st.Description), nullInt64(st.CreatedBy),
			st.LastStepSeq, st.CreatedAt, nullTime(st.UpdatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("upserting process %d: %w", st.ID, err)
		}
	}

	// Stale rows go first so their sequence numbers are free before inserts.
	if err := r.deleteStaleSteps(ctx, tx, processID, st.Steps); err != nil {
		return nil, err
	}

	for i, step := range p.Steps() {
		ss := st.Steps[i]
		if ss.ID != 0 {
			_, err := tx.ExecContext(ctx, d.rebind(upsertStepSQL),
				ss.ID, processID, ss.Seq, ss.Name, ss.Order, nullInt64(ss.AssignedRoleID),
				ss.CreatedAt, nullTime(ss.UpdatedAt),
			)
			if err != nil {
				return nil, fmt.Errorf("upserting step %d: %w", ss.ID, err)
			}
			continue
		}

		var stepID int64
		err := tx.QueryRowContext(ctx, d.rebind(insertStepSQL),
			processID, ss.Seq, ss.Name, ss.Order, nullInt64(ss.AssignedRoleID),
			ss.CreatedAt, nullTime(ss.UpdatedAt),
		).Scan(&stepID)
		if err != nil {
			return nil, fmt.Errorf("inserting step %q: %w", ss.Name, err)
		}
		assign = append(assign, func() error { return step.AssignID(stepID) })
	}

	return assign, nil
}

// deleteStaleSteps removes the persisted steps of processID that are not in
// keep.
func (r *ProcessRepository) deleteStaleSteps(ctx context.Context, tx *sql.Tx, processID int64, keep []process.StepState) error {
	args := []any{processID}
	for _, s := range keep {
		if s.ID != 0 {
			args = append(args, s.ID)
		}
	}

	query := "DELETE FROM process_steps WHERE process_id = ?"
	if len(args) > 1 {
		query += " AND id NOT IN (" + placeholders(len(args)-1) + ")"
	}
	if _, err := tx.ExecContext(ctx, r.store.dialect.rebind(query), args...); err != nil {
		return fmt.Errorf("deleting removed steps: %w", err)
	}
	return nil
}

// Delete removes the process, its steps, and its executions.
func (r *ProcessRepository) Delete(ctx context.Context, id int64) error {
	d := r.store.dialect

	err := r.store.observe(ctx, tableProcesses, "delete", func(ctx context.Context) error {
		return r.store.inTx(ctx, func(tx *sql.Tx) error {
			for _, query := range []string{
				"DELETE FROM executions WHERE process_id = ?",
				"DELETE FROM process_steps WHERE process_id = ?",
			} {
				if _, err := tx.ExecContext(ctx, d.rebind(query), id); err != nil {
					return err
				}
			}
			res, err := tx.ExecContext(ctx, d.rebind("DELETE FROM processes WHERE id = ?"), id)
			if err != nil {
				return err
			}
			return requireAffected(res)
		})
	})
	if err != nil {
		return fmt.Errorf("deleting process %d: %w", id, err)
	}
	return nil
}

func (r *ProcessRepository) queryProcesses(ctx context.Context, query string, args ...any) ([]process.State, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []process.State
	for rows.Next() {
		var (
			st          process.State
			department  sql.NullInt64
			description sql.NullString
			createdBy   sql.NullInt64
			updatedAt   sql.NullTime
		)
		if err := rows.Scan(&st.ID, &st.Name, &department, &description, &createdBy,
			&st.LastStepSeq, &st.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning process: %w", err)
		}
		st.DepartmentID = int64Ptr(department)
		st.Description = stringPtr(description)
		st.CreatedBy = int64Ptr(createdBy)
		st.UpdatedAt = timePtr(updatedAt)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *ProcessRepository) querySteps(ctx context.Context, query string, args ...any) ([]process.StepState, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []process.StepState
	for rows.Next() {
		var (
			st        process.StepState
			role      sql.NullInt64
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&st.ID, &st.ProcessID, &st.Seq, &st.Name, &st.Order, &role,
			&st.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		st.AssignedRoleID = int64Ptr(role)
		st.UpdatedAt = timePtr(updatedAt)
		out = append(out, st)
	}
	return out, rows.Err()
}
