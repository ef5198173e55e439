package domain

import (
	"fmt"
	"time"
)

// Clock supplies the current time. Entities read it on construction and on
// every Touch, so tests can drive time deterministically.
type Clock func() time.Time

// SystemClock returns the wall-clock time in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Entity is the audit base embedded by every entity. It owns the identity
// and the creation/update timestamps.
//
// CreatedAt is fixed at construction. UpdatedAt stays nil until the first
// successful mutation and never moves backwards afterwards. The identity is
// zero until storage assigns it through AssignID.
type Entity struct {
	id        int64
	createdAt time.Time
	updatedAt *time.Time
	clock     Clock
}

// NewEntity returns an unpersisted Entity created now. A nil clock falls
// back to SystemClock.
func NewEntity(clock Clock) Entity {
	if clock == nil {
		clock = SystemClock
	}
	return Entity{createdAt: clock(), clock: clock}
}

// RestoreEntity rehydrates audit fields loaded from storage.
func RestoreEntity(id int64, createdAt time.Time, updatedAt *time.Time, clock Clock) Entity {
	if clock == nil {
		clock = SystemClock
	}
	e := Entity{id: id, createdAt: createdAt, clock: clock}
	if updatedAt != nil {
		t := *updatedAt
		e.updatedAt = &t
	}
	return e
}

// ID returns the storage identity, or 0 while unpersisted.
func (e *Entity) ID() int64 { return e.id }

// CreatedAt returns the construction time.
func (e *Entity) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the time of the last successful mutation, or nil if the
// entity has never been mutated.
func (e *Entity) UpdatedAt() *time.Time {
	if e.updatedAt == nil {
		return nil
	}
	t := *e.updatedAt
	return &t
}

// AssignID sets the storage identity. It is called once by the persistence
// adapter after a successful insert.
func (e *Entity) AssignID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("assigning identity %d: must be positive", id)
	}
	if e.id != 0 {
		return fmt.Errorf("assigning identity %d over %d: %w", id, e.id, ErrIdentityAssigned)
	}
	e.id = id
	return nil
}

// Now reads the entity's clock. Aggregates use it to construct children on
// the same time source.
func (e *Entity) Now() time.Time {
	if e.clock == nil {
		return SystemClock()
	}
	return e.clock()
}

// Clock returns the entity's time source.
func (e *Entity) Clock() Clock {
	if e.clock == nil {
		return SystemClock
	}
	return e.clock
}

// Touch stamps UpdatedAt with the current time. Mutators call it last,
// after validation and assignment have succeeded.
func (e *Entity) Touch() {
	now := e.Now()
	if e.updatedAt != nil && now.Before(*e.updatedAt) {
		return
	}
	e.updatedAt = &now
}
