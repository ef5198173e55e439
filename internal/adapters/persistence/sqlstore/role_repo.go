package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

const (
	roleColumns = "id, name, description, created_at, updated_at"

	insertRoleSQL = `INSERT INTO roles (name, description, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id`

	upsertRoleSQL = `INSERT INTO roles (id, name, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	name = excluded.name,
	description = excluded.description,
	updated_at = excluded.updated_at`
)

// RoleRepository stores the roles that steps are assigned to.
type RoleRepository struct {
	store *Store
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

// NewRoleRepository returns a repository backed by store.
func NewRoleRepository(store *Store) *RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) List(ctx context.Context) ([]*org.Role, error) {
	var out []*org.Role

	err := r.store.observe(ctx, tableRoles, "list", func(ctx context.Context) error {
		var err error
		out, err = r.query(ctx, "SELECT "+roleColumns+" FROM roles ORDER BY id")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	return out, nil
}

func (r *RoleRepository) Get(ctx context.Context, id int64) (*org.Role, error) {
	var out *org.Role

	err := r.store.observe(ctx, tableRoles, "get", func(ctx context.Context) error {
		found, err := r.query(ctx, "SELECT "+roleColumns+" FROM roles WHERE id = ?", id)
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
		return nil, fmt.Errorf("getting role %d: %w", id, err)
	}
	return out, nil
}

func (r *RoleRepository) Save(ctx context.Context, role *org.Role) error {
	if role == nil {
		return &domain.MissingReferenceError{Name: "role"}
	}

	d := r.store.dialect
	st := role.State()

	var newID int64
	err := r.store.observe(ctx, tableRoles, "save", func(ctx context.Context) error {
		if st.ID != 0 {
			_, err := r.store.db.ExecContext(ctx, d.rebind(upsertRoleSQL),
				st.ID, st.Name, nullString(st.Description), st.CreatedAt, nullTime(st.UpdatedAt),
			)
			return err
		}
		return r.store.db.QueryRowContext(ctx, d.rebind(insertRoleSQL),
			st.Name, nullString(st.Description), st.CreatedAt, nullTime(st.UpdatedAt),
		).Scan(&newID)
	})
	if err != nil {
		return fmt.Errorf("saving role %q: %w", st.Name, err)
	}

	if newID != 0 {
		if err := role.AssignID(newID); err != nil {
			return fmt.Errorf("saving role %q: %w", st.Name, err)
		}
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.observe(ctx, tableRoles, "delete", func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx, r.store.dialect.rebind("DELETE FROM roles WHERE id = ?"), id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return fmt.Errorf("deleting role %d: %w", id, err)
	}
	return nil
}

func (r *RoleRepository) query(ctx context.Context, query string, args ...any) ([]*org.Role, error) {
	rows, err := r.store.db.QueryContext(ctx, r.store.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*org.Role
	for rows.Next() {
		var (
			st          org.RoleState
			description sql.NullString
			updatedAt   sql.NullTime
		)
		if err := rows.Scan(&st.ID, &st.Name, &description, &st.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		st.Description = stringPtr(description)
		st.UpdatedAt = timePtr(updatedAt)
		out = append(out, org.RestoreRole(st, r.store.clock))
	}
	return out, rows.Err()
}
