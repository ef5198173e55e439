package process

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// stepClock returns a clock that advances by one second on every read.
func stepClock() domain.Clock {
	now := baseTime
	return func() time.Time {
		t := now
		now = now.Add(time.Second)
		return t
	}
}

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(s string) *string { return &s }

// requireViolation asserts err is a *domain.DomainError carrying msg.
func requireViolation(t *testing.T, err error, msg string) {
	t.Helper()

	if err == nil {
		t.Fatalf("error = nil, want violation %q", msg)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var derr *domain.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("errors.As(err, *DomainError) = false, got %T", err)
	}
	if derr.Message != msg {
		t.Errorf("Message = %q, want %q", derr.Message, msg)
	}
}

// persistedProcess returns a process with identity 1, as storage would
// leave it after the first save.
func persistedProcess(t *testing.T) *Process {
	t.Helper()

	p, err := New(stepClock(), "Onboarding", nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := p.AssignID(1); err != nil {
		t.Fatalf("AssignID() error = %v", err)
	}
	return p
}

// requireAdvanced asserts that after is non-nil and not earlier than before.
func requireAdvanced(t *testing.T, before, after *time.Time) {
	t.Helper()

	if after == nil {
		t.Fatal("UpdatedAt = nil, want a timestamp after mutation")
	}
	if before != nil && after.Before(*before) {
		t.Errorf("UpdatedAt moved backwards: %v -> %v", *before, *after)
	}
}
