// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/process-service/internal/app/context"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// Compile-time check that ProcessService implements ports.ProcessService.
var _ ports.ProcessService = (*ProcessService)(nil)

// Repositories groups the persistence ports used by the application services.
type Repositories struct {
	Processes  ports.ProcessRepository
	Executions ports.ExecutionRepository
	Audit      ports.AuditLogRepository
	Roles      ports.RoleRepository
}

// ProcessService implements ports.ProcessService. It loads the aggregate
// through a request-scoped unit of work, lets the aggregate enforce its
// rules, and stages the save together with an audit entry.
type ProcessService struct {
	repos  Repositories
	clock  domain.Clock
	logger *slog.Logger
}

// NewProcessService creates a ProcessService. A nil clock falls back to
// domain.SystemClock and a nil logger discards output.
func NewProcessService(repos Repositories, clock domain.Clock, logger *slog.Logger) *ProcessService {
	if clock == nil {
		clock = domain.SystemClock
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProcessService{repos: repos, clock: clock, logger: logger}
}

// ListProcesses returns all processes with their steps.
func (s *ProcessService) ListProcesses(ctx context.Context) ([]*process.Process, error) {
	s.logger.InfoContext(ctx, "listing processes")

	procs, err := s.repos.Processes.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list processes",
			slog.String("operation", "ListProcesses"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	return procs, nil
}

// GetProcess returns a single process with its steps.
func (s *ProcessService) GetProcess(ctx context.Context, id int64) (*process.Process, error) {
	s.logger.InfoContext(ctx, "fetching process", slog.Int64("id", id))

	p, err := s.load(ctx, unitOfWork(ctx), id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch process",
			slog.String("operation", "GetProcess"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// CreateProcess validates and persists a new process.
func (s *ProcessService) CreateProcess(ctx context.Context, in ports.CreateProcessInput) (*process.Process, error) {
	s.logger.InfoContext(ctx, "creating process", slog.String("name", in.Name))

	p, err := process.New(s.clock, in.Name, in.DepartmentID, in.Description, in.CreatedBy)
	if err != nil {
		s.logger.WarnContext(ctx, "process rejected",
			slog.String("operation", "CreateProcess"),
			slog.Any("error", err),
		)
		return nil, err
	}

	rc := unitOfWork(ctx)
	err = commitActions(ctx, rc,
		&saveProcess{repo: s.repos.Processes, process: p, clock: s.clock},
		s.audit(audit.EntityProcess, p.ID, audit.ActionCreated, in.CreatedBy, p.Name()),
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create process",
			slog.String("operation", "CreateProcess"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// UpdateProcess applies the provided fields to an existing process.
func (s *ProcessService) UpdateProcess(ctx context.Context, id int64, in ports.UpdateProcessInput) (*process.Process, error) {
	s.logger.InfoContext(ctx, "updating process", slog.Int64("id", id))

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load process",
			slog.String("operation", "UpdateProcess"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	prior := p.State()
	if name, ok := in.Name.Get(); ok {
		if err := p.SetName(name); err != nil {
			return nil, err
		}
	}
	if dept, ok := in.DepartmentID.Get(); ok {
		p.SetDepartment(dept)
	}
	if desc, ok := in.Description.Get(); ok {
		p.SetDescription(desc)
	}

	if err := s.stageSave(ctx, rc, p, &prior, audit.ActionUpdated, nil, ""); err != nil {
		s.logger.ErrorContext(ctx, "failed to update process",
			slog.String("operation", "UpdateProcess"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// DeleteProcess removes a process. The audit entry is appended first so that
// a failed delete retracts it.
func (s *ProcessService) DeleteProcess(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting process", slog.Int64("id", id))

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, id)
	if err == nil {
		err = commitActions(ctx, rc,
			s.audit(audit.EntityProcess, fixedID(id), audit.ActionDeleted, nil, p.Name()),
			&deleteProcess{repo: s.repos.Processes, snapshot: p.State(), clock: s.clock},
		)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete process",
			slog.String("operation", "DeleteProcess"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// AddStep appends a step to the process.
func (s *ProcessService) AddStep(ctx context.Context, processID int64, in ports.AddStepInput) (*process.Step, error) {
	s.logger.InfoContext(ctx, "adding step to process",
		slog.Int64("process_id", processID),
		slog.Int("order", in.Order),
	)

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, processID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load process",
			slog.String("operation", "AddStep"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := s.requireRole(ctx, rc, in.AssignedRoleID); err != nil {
		s.logger.WarnContext(ctx, "step rejected",
			slog.String("operation", "AddStep"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, err
	}

	prior := p.State()
	step, err := p.AddStep(in.Name, in.Order, in.AssignedRoleID)
	if err != nil {
		s.logger.WarnContext(ctx, "step rejected",
			slog.String("operation", "AddStep"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, err
	}

	detail := fmt.Sprintf("step %d: %s", step.Seq(), step.Name())
	if err := s.stageSave(ctx, rc, p, &prior, audit.ActionStepAdded, nil, detail); err != nil {
		s.logger.ErrorContext(ctx, "failed to add step",
			slog.String("operation", "AddStep"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return step, nil
}

// UpdateStep applies the provided fields to a step through its setters.
// Sibling order uniqueness is not re-checked.
func (s *ProcessService) UpdateStep(ctx context.Context, processID, stepID int64, in ports.UpdateStepInput) (*process.Step, error) {
	s.logger.InfoContext(ctx, "updating step",
		slog.Int64("process_id", processID),
		slog.Int64("step_id", stepID),
	)

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, processID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load process",
			slog.String("operation", "UpdateStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return nil, err
	}

	prior := p.State()
	step, ok := p.Step(stepID)
	if !ok {
		return nil, domain.Violation("Step not found.")
	}
	if role, ok := in.AssignedRoleID.Get(); ok {
		if err := s.requireRole(ctx, rc, role); err != nil {
			s.logger.WarnContext(ctx, "step update rejected",
				slog.String("operation", "UpdateStep"),
				slog.Int64("process_id", processID),
				slog.Int64("step_id", stepID),
				slog.Any("error", err),
			)
			return nil, err
		}
	}
	if err := applyStepUpdate(step, in); err != nil {
		s.logger.WarnContext(ctx, "step update rejected",
			slog.String("operation", "UpdateStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return nil, err
	}

	detail := fmt.Sprintf("step %d: %s", step.Seq(), step.Name())
	if err := s.stageSave(ctx, rc, p, &prior, audit.ActionStepUpdated, nil, detail); err != nil {
		s.logger.ErrorContext(ctx, "failed to update step",
			slog.String("operation", "UpdateStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return step, nil
}

// RemoveStep removes a step by identity or sequence number.
func (s *ProcessService) RemoveStep(ctx context.Context, processID, stepID int64) error {
	s.logger.InfoContext(ctx, "removing step",
		slog.Int64("process_id", processID),
		slog.Int64("step_id", stepID),
	)

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, processID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load process",
			slog.String("operation", "RemoveStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return err
	}

	prior := p.State()
	if err := p.RemoveStep(stepID); err != nil {
		s.logger.WarnContext(ctx, "step removal rejected",
			slog.String("operation", "RemoveStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return err
	}

	detail := fmt.Sprintf("step %d", stepID)
	if err := s.stageSave(ctx, rc, p, &prior, audit.ActionStepRemoved, nil, detail); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove step",
			slog.String("operation", "RemoveStep"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", stepID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// StartExecution creates a started execution of a step. The process save and
// the execution insert run as a parallel group.
func (s *ProcessService) StartExecution(ctx context.Context, processID int64, in ports.StartExecutionInput) (*process.Execution, error) {
	s.logger.InfoContext(ctx, "starting execution",
		slog.Int64("process_id", processID),
		slog.Int64("step_id", in.StepID),
	)

	rc := unitOfWork(ctx)
	p, err := s.load(ctx, rc, processID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load process",
			slog.String("operation", "StartExecution"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, err
	}

	prior := p.State()
	exec, err := p.StartExecution(in.StepID, in.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "execution rejected",
			slog.String("operation", "StartExecution"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", in.StepID),
			slog.Any("error", err),
		)
		return nil, err
	}

	err = rc.AddGroup(
		&saveProcess{repo: s.repos.Processes, process: p, prior: &prior, clock: s.clock},
		&saveExecution{repo: s.repos.Executions, execution: exec, clock: s.clock},
	)
	if err == nil {
		err = commitActions(ctx, rc,
			s.audit(audit.EntityExecution, exec.ID, audit.ActionExecutionStarted, in.UserID,
				fmt.Sprintf("process %d step %d", processID, in.StepID)),
		)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to start execution",
			slog.String("operation", "StartExecution"),
			slog.Int64("process_id", processID),
			slog.Int64("step_id", in.StepID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return exec, nil
}

// processByID reads a process at most once per unit of work.
func (s *ProcessService) processByID(id int64) *appctx.DataProvider[*process.Process] {
	return appctx.NewDataProvider(processKey(id), func(ctx context.Context) (*process.Process, error) {
		return s.repos.Processes.Get(ctx, id)
	})
}

func (s *ProcessService) load(ctx context.Context, rc *appctx.RequestContext, id int64) (*process.Process, error) {
	p, err := s.processByID(id).Get(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("loading process %d: %w", id, err)
	}
	return p, nil
}

// stageSave stages the aggregate under its cache key followed by an audit
// entry, then commits.
// requireRole fails with a violation when roleID names a role that does not
// exist. Nil and non-positive ids are left to the step's own validation.
func (s *ProcessService) requireRole(ctx context.Context, rc *appctx.RequestContext, roleID *int64) error {
	if roleID == nil || *roleID <= 0 {
		return nil
	}
	id := *roleID
	_, err := appctx.GetOrFetch(ctx, rc, roleKey(id), func(ctx context.Context) (*org.Role, error) {
		return s.repos.Roles.Get(ctx, id)
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.Violationf("Role %d does not exist.", id)
	case err != nil:
		return fmt.Errorf("loading role %d: %w", id, err)
	}
	return nil
}

func (s *ProcessService) stageSave(ctx context.Context, rc *appctx.RequestContext, p *process.Process, prior *process.State, action audit.Action, actorID *int64, detail string) error {
	save := &saveProcess{repo: s.repos.Processes, process: p, prior: prior, clock: s.clock}
	if err := rc.Stage(processKey(p.ID()), p, save); err != nil {
		return err
	}
	return commitActions(ctx, rc, s.audit(audit.EntityProcess, p.ID, action, actorID, detail))
}

func (s *ProcessService) audit(entity string, entityID func() int64, action audit.Action, actorID *int64, detail string) *appendAudit {
	return &appendAudit{
		repo:     s.repos.Audit,
		clock:    s.clock,
		entity:   entity,
		entityID: entityID,
		action:   action,
		actorID:  actorID,
		detail:   detail,
	}
}

// commitActions queues actions in order and commits the unit of work.
func commitActions(ctx context.Context, rc *appctx.RequestContext, actions ...domain.Action) error {
	for _, a := range actions {
		if err := rc.AddAction(a); err != nil {
			return err
		}
	}
	return rc.Commit(ctx)
}

func applyStepUpdate(step *process.Step, in ports.UpdateStepInput) error {
	if name, ok := in.Name.Get(); ok {
		if err := step.SetName(name); err != nil {
			return err
		}
	}
	if order, ok := in.Order.Get(); ok {
		if err := step.SetOrder(order); err != nil {
			return err
		}
	}
	if roleID, ok := in.AssignedRoleID.Get(); ok {
		if err := step.SetAssignedRole(roleID); err != nil {
			return err
		}
	}
	return nil
}
