package ports

import (
	"context"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
)

// ProcessService defines the service port for the process aggregate.
// Implemented by the application layer; called by inbound adapters (handlers).
// Business-rule violations are returned as *domain.DomainError unchanged.
type ProcessService interface {
	// ListProcesses returns all processes with their steps.
	ListProcesses(ctx context.Context) ([]*process.Process, error)

	// GetProcess returns a single process with its steps.
	// Returns domain.ErrNotFound if the process does not exist.
	GetProcess(ctx context.Context, id int64) (*process.Process, error)

	// CreateProcess creates a process with no steps and returns it with its
	// assigned identity.
	CreateProcess(ctx context.Context, in CreateProcessInput) (*process.Process, error)

	// UpdateProcess applies the provided fields to an existing process.
	// Returns domain.ErrNotFound if the process does not exist.
	UpdateProcess(ctx context.Context, id int64, in UpdateProcessInput) (*process.Process, error)

	// DeleteProcess deletes a process, its steps, and its executions.
	// Returns domain.ErrNotFound if the process does not exist.
	DeleteProcess(ctx context.Context, id int64) error

	// AddStep appends a step to the process. The step order must not be
	// used by a sibling, and an assigned role must exist.
	AddStep(ctx context.Context, processID int64, in AddStepInput) (*process.Step, error)

	// UpdateStep applies the provided fields to a step. Order uniqueness is
	// not re-checked; a newly assigned role must exist.
	UpdateStep(ctx context.Context, processID, stepID int64, in UpdateStepInput) (*process.Step, error)

	// RemoveStep removes a step by identity or sequence number.
	RemoveStep(ctx context.Context, processID, stepID int64) error

	// StartExecution creates a started execution of a step of the process.
	StartExecution(ctx context.Context, processID int64, in StartExecutionInput) (*process.Execution, error)
}

// ExecutionService defines the service port for execution lifecycle
// operations.
type ExecutionService interface {
	// ListExecutions returns the executions of a process, oldest first.
	// Returns domain.ErrNotFound if the process does not exist.
	ListExecutions(ctx context.Context, processID int64) ([]*process.Execution, error)

	// GetExecution returns a single execution.
	// Returns domain.ErrNotFound if the execution does not exist.
	GetExecution(ctx context.Context, id int64) (*process.Execution, error)

	// StartExecution restarts an execution. The user is replaced only when
	// one is provided.
	StartExecution(ctx context.Context, id int64, userID domain.Optional[int64]) (*process.Execution, error)

	// CompleteExecution marks an execution completed. Remarks are replaced
	// only with non-blank text.
	CompleteExecution(ctx context.Context, id int64, remarks domain.Optional[string]) (*process.Execution, error)

	// CancelExecution marks an execution cancelled. Remarks are replaced
	// only with non-blank text.
	CancelExecution(ctx context.Context, id int64, remarks domain.Optional[string]) (*process.Execution, error)

	// DeleteExecution deletes an execution.
	// Returns domain.ErrNotFound if the execution does not exist.
	DeleteExecution(ctx context.Context, id int64) error
}

// AuditService exposes the audit trail.
type AuditService interface {
	// ListEntries returns audit entries matching filter, oldest first.
	ListEntries(ctx context.Context, filter AuditFilter) ([]*audit.Entry, error)
}

// RoleService manages the roles that steps can be assigned to.
type RoleService interface {
	// ListRoles returns all roles.
	ListRoles(ctx context.Context) ([]*org.Role, error)

	// GetRole returns domain.ErrNotFound if the role does not exist.
	GetRole(ctx context.Context, id int64) (*org.Role, error)

	// CreateRole creates a role and returns it with its assigned identity.
	CreateRole(ctx context.Context, in CreateRoleInput) (*org.Role, error)
}

// CreateProcessInput carries the fields of a new process.
type CreateProcessInput struct {
	Name         string
	DepartmentID *int64
	Description  *string
	CreatedBy    *int64
}

// UpdateProcessInput carries a partial process update. Absent fields are
// left unchanged; a present nil clears the field.
type UpdateProcessInput struct {
	Name         domain.Optional[string]
	DepartmentID domain.Optional[*int64]
	Description  domain.Optional[*string]
}

// AddStepInput carries the fields of a new step.
type AddStepInput struct {
	Name           string
	Order          int
	AssignedRoleID *int64
}

// UpdateStepInput carries a partial step update.
type UpdateStepInput struct {
	Name           domain.Optional[string]
	Order          domain.Optional[int]
	AssignedRoleID domain.Optional[*int64]
}

// CreateRoleInput carries the fields of a new role.
type CreateRoleInput struct {
	Name        string
	Description *string
	CreatedBy   *int64
}

// StartExecutionInput identifies the step to run and who runs it.
type StartExecutionInput struct {
	StepID int64
	UserID *int64
}

// AuditFilter narrows an audit listing. Zero values match everything.
type AuditFilter struct {
	Entity   string
	EntityID int64
}
