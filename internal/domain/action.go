package domain

import "context"

// Action is one persisted side effect of a use case: saving a process,
// deleting an execution, appending an audit entry. Actions are queued and
// run together; when a later one fails, the earlier ones are undone through
// Rollback.
type Action interface {
	// Execute applies the effect. It must honor ctx cancellation.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It is never called after a
	// failed Execute.
	Rollback(ctx context.Context) error

	// Description names the action in logs and errors, e.g. "save process 12".
	Description() string
}
