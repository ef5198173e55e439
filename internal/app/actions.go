package app

import (
	"context"
	"fmt"
	"strconv"

	appctx "github.com/jsamuelsen11/process-service/internal/app/context"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// unitOfWork returns the RequestContext installed by the HTTP middleware, or
// a fresh one when the caller has none or has already committed it.
func unitOfWork(ctx context.Context) *appctx.RequestContext {
	if rc := appctx.FromContext(ctx); rc != nil && !rc.Committed() {
		return rc
	}
	return appctx.New(ctx)
}

func processKey(id int64) string   { return "process:" + strconv.FormatInt(id, 10) }
func executionKey(id int64) string { return "execution:" + strconv.FormatInt(id, 10) }
func roleKey(id int64) string      { return "role:" + strconv.FormatInt(id, 10) }

// saveProcess writes the aggregate. Rollback deletes a newly created process
// or writes the pre-mutation snapshot back.
type saveProcess struct {
	repo    ports.ProcessRepository
	process *process.Process
	prior   *process.State
	clock   domain.Clock
}

func (a *saveProcess) Execute(ctx context.Context) error {
	return a.repo.Save(ctx, a.process)
}

func (a *saveProcess) Rollback(ctx context.Context) error {
	if a.prior == nil {
		if a.process.ID() == 0 {
			return nil
		}
		return a.repo.Delete(ctx, a.process.ID())
	}
	return a.repo.Save(ctx, process.Restore(*a.prior, a.clock))
}

func (a *saveProcess) Description() string {
	if a.prior == nil {
		return fmt.Sprintf("create process %q", a.process.Name())
	}
	return fmt.Sprintf("save process %d", a.prior.ID)
}

// deleteProcess removes the aggregate. Rollback recreates it, steps
// included, from the snapshot.
type deleteProcess struct {
	repo     ports.ProcessRepository
	snapshot process.State
	clock    domain.Clock
}

func (a *deleteProcess) Execute(ctx context.Context) error {
	return a.repo.Delete(ctx, a.snapshot.ID)
}

func (a *deleteProcess) Rollback(ctx context.Context) error {
	return a.repo.Save(ctx, process.Restore(a.snapshot, a.clock))
}

func (a *deleteProcess) Description() string {
	return fmt.Sprintf("delete process %d", a.snapshot.ID)
}

type saveExecution struct {
	repo      ports.ExecutionRepository
	execution *process.Execution
	prior     *process.ExecutionState
	clock     domain.Clock
}

func (a *saveExecution) Execute(ctx context.Context) error {
	return a.repo.Save(ctx, a.execution)
}

func (a *saveExecution) Rollback(ctx context.Context) error {
	if a.prior == nil {
		if a.execution.ID() == 0 {
			return nil
		}
		return a.repo.Delete(ctx, a.execution.ID())
	}
	return a.repo.Save(ctx, process.RestoreExecution(*a.prior, a.clock))
}

func (a *saveExecution) Description() string {
	if a.prior == nil {
		return fmt.Sprintf("create execution of step %d", a.execution.StepID())
	}
	return fmt.Sprintf("save execution %d", a.prior.ID)
}

type deleteExecution struct {
	repo     ports.ExecutionRepository
	snapshot process.ExecutionState
	clock    domain.Clock
}

func (a *deleteExecution) Execute(ctx context.Context) error {
	return a.repo.Delete(ctx, a.snapshot.ID)
}

func (a *deleteExecution) Rollback(ctx context.Context) error {
	return a.repo.Save(ctx, process.RestoreExecution(a.snapshot, a.clock))
}

func (a *deleteExecution) Description() string {
	return fmt.Sprintf("delete execution %d", a.snapshot.ID)
}

// saveRole inserts a new role. Rollback deletes it again.
type saveRole struct {
	repo ports.RoleRepository
	role *org.Role
}

func (a *saveRole) Execute(ctx context.Context) error {
	return a.repo.Save(ctx, a.role)
}

func (a *saveRole) Rollback(ctx context.Context) error {
	if a.role.ID() == 0 {
		return nil
	}
	return a.repo.Delete(ctx, a.role.ID())
}

func (a *saveRole) Description() string {
	return fmt.Sprintf("create role %q", a.role.Name())
}

// appendAudit records an audit entry. The entity identity is read at
// execution time because a created entity only has one after the preceding
// save action ran.
type appendAudit struct {
	repo     ports.AuditLogRepository
	clock    domain.Clock
	entity   string
	entityID func() int64
	action   audit.Action
	actorID  *int64
	detail   string

	entry *audit.Entry
}

func (a *appendAudit) Execute(ctx context.Context) error {
	entry, err := audit.NewEntry(a.clock, a.entity, a.entityID(), a.action, a.actorID, a.detail)
	if err != nil {
		return err
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		return err
	}
	a.entry = entry
	return nil
}

func (a *appendAudit) Rollback(ctx context.Context) error {
	if a.entry == nil || a.entry.ID() == 0 {
		return nil
	}
	return a.repo.Delete(ctx, a.entry.ID())
}

func (a *appendAudit) Description() string {
	return fmt.Sprintf("audit %s %s", a.entity, a.action)
}

func fixedID(id int64) func() int64 { return func() int64 { return id } }
