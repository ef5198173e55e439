package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/process-service/internal/app/context"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// Compile-time check that ExecutionService implements ports.ExecutionService.
var _ ports.ExecutionService = (*ExecutionService)(nil)

// ExecutionService implements ports.ExecutionService. State changes are
// applied by the execution itself; every transition is accepted.
type ExecutionService struct {
	repos   Repositories
	clock   domain.Clock
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// ExecutionOption configures an ExecutionService.
type ExecutionOption func(*ExecutionService)

// WithExecutionMetrics counts status transitions in m. A nil m records
// nothing.
func WithExecutionMetrics(m *telemetry.Metrics) ExecutionOption {
	return func(s *ExecutionService) { s.metrics = m }
}

// NewExecutionService creates an ExecutionService. A nil clock falls back to
// domain.SystemClock and a nil logger discards output.
func NewExecutionService(repos Repositories, clock domain.Clock, logger *slog.Logger, opts ...ExecutionOption) *ExecutionService {
	if clock == nil {
		clock = domain.SystemClock
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ExecutionService{repos: repos, clock: clock, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListExecutions returns the executions of an existing process.
func (s *ExecutionService) ListExecutions(ctx context.Context, processID int64) ([]*process.Execution, error) {
	s.logger.InfoContext(ctx, "listing executions", slog.Int64("process_id", processID))

	if _, err := s.repos.Processes.Get(ctx, processID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify process",
			slog.String("operation", "ListExecutions"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying process: %w", err)
	}

	execs, err := s.repos.Executions.ListByProcess(ctx, processID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list executions",
			slog.String("operation", "ListExecutions"),
			slog.Int64("process_id", processID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing executions: %w", err)
	}

	return execs, nil
}

// GetExecution returns a single execution.
func (s *ExecutionService) GetExecution(ctx context.Context, id int64) (*process.Execution, error) {
	s.logger.InfoContext(ctx, "fetching execution", slog.Int64("id", id))

	e, err := s.load(ctx, unitOfWork(ctx), id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch execution",
			slog.String("operation", "GetExecution"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return e, nil
}

// StartExecution restarts an execution.
func (s *ExecutionService) StartExecution(ctx context.Context, id int64, userID domain.Optional[int64]) (*process.Execution, error) {
	return s.transition(ctx, "StartExecution", id, audit.ActionExecutionStarted, nil, func(e *process.Execution) {
		e.Start(userID)
	})
}

// CompleteExecution marks an execution completed.
func (s *ExecutionService) CompleteExecution(ctx context.Context, id int64, remarks domain.Optional[string]) (*process.Execution, error) {
	return s.transition(ctx, "CompleteExecution", id, audit.ActionExecutionCompleted, remarksDetail, func(e *process.Execution) {
		e.Complete(remarks)
	})
}

// CancelExecution marks an execution cancelled.
func (s *ExecutionService) CancelExecution(ctx context.Context, id int64, remarks domain.Optional[string]) (*process.Execution, error) {
	return s.transition(ctx, "CancelExecution", id, audit.ActionExecutionCancelled, remarksDetail, func(e *process.Execution) {
		e.Cancel(remarks)
	})
}

// DeleteExecution removes an execution after recording the deletion.
func (s *ExecutionService) DeleteExecution(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting execution", slog.Int64("id", id))

	rc := unitOfWork(ctx)
	e, err := s.load(ctx, rc, id)
	if err == nil {
		err = commitActions(ctx, rc,
			s.audit(fixedID(id), audit.ActionDeleted, e.UserID(), ""),
			&deleteExecution{repo: s.repos.Executions, snapshot: e.State(), clock: s.clock},
		)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete execution",
			slog.String("operation", "DeleteExecution"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// remarksDetail records the execution's remarks as they stand after the
// transition.
func remarksDetail(e *process.Execution) string {
	if r := e.Remarks(); r != nil {
		return *r
	}
	return ""
}

// transition loads the execution, applies the status change and commits it
// with an audit entry. A nil detail leaves the entry without a note.
func (s *ExecutionService) transition(ctx context.Context, op string, id int64, action audit.Action, detail func(*process.Execution) string, apply func(*process.Execution)) (e *process.Execution, err error) {
	s.logger.InfoContext(ctx, "changing execution status",
		slog.String("operation", op),
		slog.Int64("id", id),
	)

	target := "unknown"
	defer func() { s.recordTransition(ctx, target, err) }()

	rc := unitOfWork(ctx)
	e, err = s.load(ctx, rc, id)
	if err == nil {
		prior := e.State()
		apply(e)
		target = e.Status().String()

		var note string
		if detail != nil {
			note = detail(e)
		}

		save := &saveExecution{repo: s.repos.Executions, execution: e, prior: &prior, clock: s.clock}
		err = rc.Stage(executionKey(id), e, save)
		if err == nil {
			err = commitActions(ctx, rc, s.audit(fixedID(id), action, e.UserID(), note))
		}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change execution status",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "execution status changed",
		slog.Int64("id", id),
		slog.String("status", e.Status().String()),
	)
	return e, nil
}

func (s *ExecutionService) recordTransition(ctx context.Context, status string, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.ExecutionTransitions.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrExecutionStatus.String(status),
		telemetry.AttrResult.String(result),
	))
}

func (s *ExecutionService) load(ctx context.Context, rc *appctx.RequestContext, id int64) (*process.Execution, error) {
	e, err := appctx.GetOrFetch(ctx, rc, executionKey(id), func(ctx context.Context) (*process.Execution, error) {
		return s.repos.Executions.Get(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("loading execution %d: %w", id, err)
	}
	return e, nil
}

func (s *ExecutionService) audit(entityID func() int64, action audit.Action, actorID *int64, detail string) *appendAudit {
	return &appendAudit{
		repo:     s.repos.Audit,
		clock:    s.clock,
		entity:   audit.EntityExecution,
		entityID: entityID,
		action:   action,
		actorID:  actorID,
		detail:   detail,
	}
}
