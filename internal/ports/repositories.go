package ports

import (
	"context"

	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
)

// ProcessRepository persists the process aggregate. Implemented by the
// persistence adapter; called by the application layer.
type ProcessRepository interface {
	// List returns all processes with their steps, ordered by identity.
	List(ctx context.Context) ([]*process.Process, error)

	// Get returns the process with its steps.
	// Returns domain.ErrNotFound if the process does not exist.
	Get(ctx context.Context, id int64) (*process.Process, error)

	// Save writes the process and all of its steps in one transaction.
	// Unpersisted process and step entities receive their identity through
	// AssignID. Entities that already carry an identity are upserted, so
	// saving a restored snapshot recreates deleted rows. Steps that are no
	// longer part of the aggregate are deleted.
	Save(ctx context.Context, p *process.Process) error

	// Delete removes the process together with its steps and executions.
	// Returns domain.ErrNotFound if the process does not exist.
	Delete(ctx context.Context, id int64) error
}

// ExecutionRepository persists executions.
type ExecutionRepository interface {
	// ListByProcess returns the executions of a process ordered by identity.
	ListByProcess(ctx context.Context, processID int64) ([]*process.Execution, error)

	// Get returns domain.ErrNotFound if the execution does not exist.
	Get(ctx context.Context, id int64) (*process.Execution, error)

	// Save inserts an unpersisted execution and assigns its identity, or
	// upserts one that already carries an identity.
	Save(ctx context.Context, e *process.Execution) error

	// Delete returns domain.ErrNotFound if the execution does not exist.
	Delete(ctx context.Context, id int64) error
}

// AuditLogRepository stores the audit trail.
type AuditLogRepository interface {
	// Append inserts the entry and assigns its identity.
	Append(ctx context.Context, e *audit.Entry) error

	// Delete removes an entry. It exists so that a failed unit of work can
	// retract an entry it already appended.
	Delete(ctx context.Context, id int64) error

	// List returns entries matching filter ordered by identity.
	List(ctx context.Context, filter AuditFilter) ([]*audit.Entry, error)
}

// RoleRepository stores the roles that steps are assigned to.
type RoleRepository interface {
	// List returns all roles ordered by identity.
	List(ctx context.Context) ([]*org.Role, error)

	// Get returns domain.ErrNotFound if the role does not exist.
	Get(ctx context.Context, id int64) (*org.Role, error)

	// Save inserts an unpersisted role and assigns its identity, or upserts
	// one that already carries an identity.
	Save(ctx context.Context, r *org.Role) error

	// Delete returns domain.ErrNotFound if the role does not exist.
	Delete(ctx context.Context, id int64) error
}
