package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

const insertAuditSQL = `INSERT INTO audit_log (entity, entity_id, action, actor_id, detail, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`

// AuditLogRepository stores the audit trail.
type AuditLogRepository struct {
	store *Store
}

var _ ports.AuditLogRepository = (*AuditLogRepository)(nil)

// NewAuditLogRepository returns a repository backed by store.
func NewAuditLogRepository(store *Store) *AuditLogRepository {
	return &AuditLogRepository{store: store}
}

func (r *AuditLogRepository) Append(ctx context.Context, e *audit.Entry) error {
	if e == nil {
		return &domain.MissingReferenceError{Name: "audit entry"}
	}

	st := e.State()
	var id int64
	err := r.store.observe(ctx, tableAudit, "append", func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx, r.store.dialect.rebind(insertAuditSQL),
			st.Entity, st.EntityID, string(st.Action), nullInt64(st.ActorID), nullString(st.Detail), st.CreatedAt,
		).Scan(&id)
	})
	if err != nil {
		return fmt.Errorf("appending audit %s %s: %w", st.Entity, st.Action, err)
	}
	return e.AssignID(id)
}

func (r *AuditLogRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.observe(ctx, tableAudit, "delete", func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx, r.store.dialect.rebind("DELETE FROM audit_log WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("deleting audit entry %d: %w", id, err)
	}
	return nil
}

// List returns the entries matching filter ordered by identity. Empty
// filter fields match every row.
func (r *AuditLogRepository) List(ctx context.Context, filter ports.AuditFilter) ([]*audit.Entry, error) {
	var (
		where []string
		args  []any
	)
	if filter.Entity != "" {
		where = append(where, "entity = ?")
		args = append(args, filter.Entity)
	}
	if filter.EntityID != 0 {
		where = append(where, "entity_id = ?")
		args = append(args, filter.EntityID)
	}

	query := "SELECT id, entity, entity_id, action, actor_id, detail, created_at FROM audit_log"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	var out []*audit.Entry
	err := r.store.observe(ctx, tableAudit, "list", func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				st      audit.EntryState
				action  string
				actorID sql.NullInt64
				detail  sql.NullString
			)
			if err := rows.Scan(&st.ID, &st.Entity, &st.EntityID, &action, &actorID, &detail,
				&st.CreatedAt); err != nil {
				return fmt.Errorf("scanning audit entry: %w", err)
			}
			st.Action = audit.Action(action)
			st.ActorID = int64Ptr(actorID)
			st.Detail = stringPtr(detail)
			out = append(out, audit.RestoreEntry(st))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	return out, nil
}
