package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

var recordedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func clockAt(ts time.Time) domain.Clock {
	return func() time.Time { return ts }
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	actor := int64(9)
	e, err := NewEntry(clockAt(recordedAt), EntityProcess, 3, ActionStepAdded, &actor, "  step 2: Review  ")
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}

	if e.EntityName() != EntityProcess || e.EntityID() != 3 || e.Action() != ActionStepAdded {
		t.Errorf("NewEntry() = (%q, %d, %q)", e.EntityName(), e.EntityID(), e.Action())
	}
	if got := e.ActorID(); got == nil || *got != 9 {
		t.Errorf("ActorID() = %v, want 9", got)
	}
	if got := e.Detail(); got == nil || *got != "step 2: Review" {
		t.Errorf("Detail() = %v, want trimmed detail", got)
	}
	if !e.CreatedAt().Equal(recordedAt) {
		t.Errorf("CreatedAt() = %v, want %v", e.CreatedAt(), recordedAt)
	}
	if e.UpdatedAt() != nil {
		t.Error("UpdatedAt() should stay nil for audit entries")
	}

	actor = 10
	if *e.ActorID() != 9 {
		t.Error("NewEntry kept a reference to the caller's actor id")
	}
}

func TestNewEntry_BlankDetail(t *testing.T) {
	t.Parallel()

	e, err := NewEntry(clockAt(recordedAt), EntityExecution, 1, ActionDeleted, nil, "   ")
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	if e.Detail() != nil || e.ActorID() != nil {
		t.Errorf("NewEntry() = (detail %v, actor %v), want both nil", e.Detail(), e.ActorID())
	}
}

func TestNewEntry_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entity   string
		entityID int64
		action   Action
		wantMsg  string
	}{
		{name: "blank entity", entity: " ", entityID: 1, action: ActionCreated, wantMsg: "Audit entity is required."},
		{name: "zero id", entity: EntityProcess, entityID: 0, action: ActionCreated, wantMsg: "Audit entity id is invalid."},
		{name: "missing action", entity: EntityProcess, entityID: 1, action: "", wantMsg: "Audit action is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewEntry(clockAt(recordedAt), tt.entity, tt.entityID, tt.action, nil, "")
			var derr *domain.DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("error = %v, want *domain.DomainError", err)
			}
			if derr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", derr.Message, tt.wantMsg)
			}
		})
	}
}

func TestEntry_StateRoundTrip(t *testing.T) {
	t.Parallel()

	actor := int64(4)
	detail := "cancelled by operator"
	state := EntryState{
		ID:        11,
		Entity:    EntityExecution,
		EntityID:  7,
		Action:    ActionExecutionCancelled,
		ActorID:   &actor,
		Detail:    &detail,
		CreatedAt: recordedAt,
	}

	got := RestoreEntry(state).State()

	if got.ID != 11 || got.Entity != EntityExecution || got.EntityID != 7 || got.Action != ActionExecutionCancelled {
		t.Errorf("State() = %+v, want %+v", got, state)
	}
	if *got.ActorID != 4 || *got.Detail != detail || !got.CreatedAt.Equal(recordedAt) {
		t.Errorf("State() optional fields = (%v, %v, %v)", *got.ActorID, *got.Detail, got.CreatedAt)
	}
}
