package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrMissingReference marks a required object reference that was not
	// supplied. It signals a defect at the call site, not a rejected rule.
	ErrMissingReference = errors.New("missing required reference")

	// ErrIdentityAssigned is returned when storage tries to assign an
	// identity to an entity that already has one.
	ErrIdentityAssigned = errors.New("identity already assigned")
)

// DomainError is the single error kind raised by every business-rule
// violation. Message names the rule that failed and is meant to be shown to
// the caller as-is; it is not a machine-readable code.
//
// errors.Is(err, ErrValidation) reports true for any DomainError.
type DomainError struct {
	Message string
}

// Violation returns a *DomainError carrying msg.
func Violation(msg string) error {
	return &DomainError{Message: msg}
}

// Violationf formats a *DomainError message.
func Violationf(format string, args ...any) error {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return ErrValidation
}

// MissingReferenceError reports that a required object reference was nil.
type MissingReferenceError struct {
	Name string
}

func (e *MissingReferenceError) Error() string {
	return ErrMissingReference.Error() + ": " + e.Name
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}

// ValidationError provides programmatic access to field-level validation failures.
// It is used at the transport boundary (request bodies, path parameters).
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
