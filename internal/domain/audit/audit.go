// Package audit records what happened to processes, executions and roles.
package audit

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// Entity names used in audit entries.
const (
	EntityProcess   = "process"
	EntityExecution = "execution"
	EntityRole      = "role"
)

// Action identifies the mutation an Entry records.
type Action string

const (
	ActionCreated            Action = "created"
	ActionUpdated            Action = "updated"
	ActionDeleted            Action = "deleted"
	ActionStepAdded          Action = "step_added"
	ActionStepUpdated        Action = "step_updated"
	ActionStepRemoved        Action = "step_removed"
	ActionExecutionStarted   Action = "execution_started"
	ActionExecutionCompleted Action = "execution_completed"
	ActionExecutionCancelled Action = "execution_cancelled"
)

// Entry is an append-only audit record. It is never mutated after
// construction, so UpdatedAt stays nil.
type Entry struct {
	domain.Entity

	entity   string
	entityID int64
	action   Action
	actorID  *int64
	detail   *string
}

// NewEntry validates and constructs an unpersisted Entry.
func NewEntry(clock domain.Clock, entity string, entityID int64, action Action, actorID *int64, detail string) (*Entry, error) {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return nil, domain.Violation("Audit entity is required.")
	}
	if entityID <= 0 {
		return nil, domain.Violation("Audit entity id is invalid.")
	}
	if action == "" {
		return nil, domain.Violation("Audit action is required.")
	}

	e := &Entry{
		Entity:   domain.NewEntity(clock),
		entity:   entity,
		entityID: entityID,
		action:   action,
	}
	if actorID != nil {
		v := *actorID
		e.actorID = &v
	}
	if d := strings.TrimSpace(detail); d != "" {
		e.detail = &d
	}
	return e, nil
}

// EntryState is the storage representation of an Entry.
type EntryState struct {
	ID        int64
	Entity    string
	EntityID  int64
	Action    Action
	ActorID   *int64
	Detail    *string
	CreatedAt time.Time
}

// RestoreEntry rehydrates an Entry loaded from storage.
func RestoreEntry(s EntryState) *Entry {
	e := &Entry{
		Entity:   domain.RestoreEntity(s.ID, s.CreatedAt, nil, nil),
		entity:   s.Entity,
		entityID: s.EntityID,
		action:   s.Action,
	}
	if s.ActorID != nil {
		v := *s.ActorID
		e.actorID = &v
	}
	if s.Detail != nil {
		v := *s.Detail
		e.detail = &v
	}
	return e
}

func (e *Entry) EntityName() string { return e.entity }
func (e *Entry) EntityID() int64    { return e.entityID }
func (e *Entry) Action() Action     { return e.action }

// ActorID returns the user who performed the action, if known.
func (e *Entry) ActorID() *int64 {
	if e.actorID == nil {
		return nil
	}
	v := *e.actorID
	return &v
}

// Detail returns the free-text note attached to the entry, if any.
func (e *Entry) Detail() *string {
	if e.detail == nil {
		return nil
	}
	v := *e.detail
	return &v
}

// State returns the storage representation.
func (e *Entry) State() EntryState {
	return EntryState{
		ID:        e.ID(),
		Entity:    e.entity,
		EntityID:  e.entityID,
		Action:    e.action,
		ActorID:   e.ActorID(),
		Detail:    e.Detail(),
		CreatedAt: e.CreatedAt(),
	}
}
