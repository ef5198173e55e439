package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/platform/logging"
)

// unit is one entry of the commit queue: a single action or a parallel
// group of actions.
type unit interface {
	run(ctx context.Context) error
	undo(ctx context.Context, logger *slog.Logger)
	String() string
}

type single struct {
	action domain.Action
}

func (s single) run(ctx context.Context) error { return s.action.Execute(ctx) }

func (s single) undo(ctx context.Context, logger *slog.Logger) {
	undoAction(ctx, logger, s.action)
}

func (s single) String() string { return s.action.Description() }

// group runs its actions concurrently. The first failure cancels the
// others and undoes the ones that already succeeded.
type group struct {
	actions []domain.Action

	mu   sync.Mutex
	done []bool
}

func (g *group) run(ctx context.Context) error {
	g.mu.Lock()
	g.done = make([]bool, len(g.actions))
	g.mu.Unlock()

	eg, egCtx := errgroup.WithContext(ctx)
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(egCtx); err != nil {
				return err
			}
			g.mu.Lock()
			g.done[i] = true
			g.mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.undo(ctx, logging.FromContext(ctx))
		return err
	}
	return nil
}

// undo reverts the members that succeeded, last member first. It is called
// both when the group itself fails and when a later unit fails.
func (g *group) undo(ctx context.Context, logger *slog.Logger) {
	g.mu.Lock()
	done := g.done
	g.done = nil
	g.mu.Unlock()

	for i := len(done) - 1; i >= 0; i-- {
		if done[i] {
			undoAction(ctx, logger, g.actions[i])
		}
	}
}

func (g *group) String() string {
	switch len(g.actions) {
	case 0:
		return "empty action group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("action group (%d actions: %s, ...)", len(g.actions), g.actions[0].Description())
	}
}

func undoAction(ctx context.Context, logger *slog.Logger, a domain.Action) {
	if err := a.Rollback(ctx); err != nil {
		logger.ErrorContext(ctx, "rollback failed",
			slog.String("operation", "RequestContext.Commit"),
			slog.String("action", a.Description()),
			slog.Any("error", err),
		)
	}
}

// enqueue appends u unless the context was already committed.
func (rc *RequestContext) enqueue(u unit) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, u)
	return nil
}

// AddAction queues action for Commit. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(single{action: action})
}

// AddGroup queues actions that Commit runs concurrently, as one unit.
// Safe for concurrent use.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return rc.enqueue(&group{actions: actions})
}

// Commit runs the queued units in order. When one fails, the units that
// completed before it are rolled back newest first and the failure is
// returned wrapped with the unit's description. Rollback errors are logged,
// never returned.
//
// The context is committed once Commit is called, whatever the outcome. A
// second call returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, u := range items {
		logger.DebugContext(ctx, "executing action",
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", u.String()),
		)

		if err := u.run(ctx); err != nil {
			logger.WarnContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", u.String()),
				slog.Any("error", err),
			)
			for j := i - 1; j >= 0; j-- {
				items[j].undo(ctx, logger)
			}
			return fmt.Errorf("executing %s: %w", u, err)
		}
	}
	return nil
}
