// Package org holds the organisational entities that processes refer to by
// identity. Steps are assigned to roles.
package org

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// MaxRoleNameLength bounds Role.Name in runes.
const MaxRoleNameLength = 100

// Role is a named responsibility that a process step can be assigned to.
type Role struct {
	domain.Entity

	name        string
	description *string
}

// NewRole validates and constructs an unpersisted Role.
func NewRole(clock domain.Clock, name string, description *string) (*Role, error) {
	n, err := validRoleName(name)
	if err != nil {
		return nil, err
	}
	return &Role{
		Entity:      domain.NewEntity(clock),
		name:        n,
		description: normalize(description),
	}, nil
}

// RoleState is the storage representation of a Role.
type RoleState struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// RestoreRole rehydrates a Role loaded from storage.
func RestoreRole(s RoleState, clock domain.Clock) *Role {
	return &Role{
		Entity:      domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, clock),
		name:        s.Name,
		description: copyString(s.Description),
	}
}

// State returns the storage representation.
func (r *Role) State() RoleState {
	return RoleState{
		ID:          r.ID(),
		Name:        r.name,
		Description: copyString(r.description),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func (r *Role) Name() string         { return r.name }
func (r *Role) Description() *string { return copyString(r.description) }

// Rename replaces the role name.
func (r *Role) Rename(name string) error {
	n, err := validRoleName(name)
	if err != nil {
		return err
	}
	r.name = n
	r.Touch()
	return nil
}

func validRoleName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", domain.Violation("Role name is required.")
	}
	if utf8.RuneCountInString(n) > MaxRoleNameLength {
		return "", domain.Violationf("Role name must not exceed %d characters.", MaxRoleNameLength)
	}
	return n, nil
}

func normalize(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
