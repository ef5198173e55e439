package process

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// Step is one ordered unit of work inside a Process, optionally assigned to
// a role. Steps are created through Process.AddStep and removed through
// Process.RemoveStep. The setters are public; order uniqueness among
// siblings is checked only when a step is added.
type Step struct {
	domain.Entity

	processID      int64
	seq            int
	name           string
	order          int
	assignedRoleID *int64
}

// StepState is the flat representation of a Step used by storage and by
// rollback snapshots.
type StepState struct {
	ID             int64
	Seq            int
	ProcessID      int64
	Name           string
	Order          int
	AssignedRoleID *int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func newStep(clock domain.Clock, processID int64, name string, order int, assignedRoleID *int64) (*Step, error) {
	if processID <= 0 {
		return nil, domain.Violation("Invalid ProcessId.")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Violation(msgStepNameRequired)
	}
	if order < 0 {
		return nil, domain.Violation(msgStepOrderNegative)
	}
	if assignedRoleID != nil && *assignedRoleID <= 0 {
		return nil, domain.Violation(msgInvalidRoleID)
	}

	return &Step{
		Entity:         domain.NewEntity(clock),
		processID:      processID,
		name:           name,
		order:          order,
		assignedRoleID: copyInt64(assignedRoleID),
	}, nil
}

// RestoreStep rehydrates a Step loaded from storage.
func RestoreStep(s StepState, clock domain.Clock) *Step {
	return &Step{
		Entity:         domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, clock),
		processID:      s.ProcessID,
		seq:            s.Seq,
		name:           s.Name,
		order:          s.Order,
		assignedRoleID: copyInt64(s.AssignedRoleID),
	}
}

// ProcessID returns the owning process identity.
func (s *Step) ProcessID() int64 { return s.processID }

// Seq returns the process-scoped step number assigned by AddStep.
func (s *Step) Seq() int { return s.seq }

// Name returns the trimmed step name.
func (s *Step) Name() string { return s.name }

// Order returns the step's position within its process.
func (s *Step) Order() int { return s.order }

// AssignedRoleID returns the assigned role, or nil when unassigned.
func (s *Step) AssignedRoleID() *int64 { return copyInt64(s.assignedRoleID) }

// SetName replaces the step name.
func (s *Step) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Violation(msgStepNameRequired)
	}
	s.name = name
	s.Touch()
	return nil
}

// SetOrder changes the step's position. It does not compare against sibling
// steps.
func (s *Step) SetOrder(order int) error {
	if order < 0 {
		return domain.Violation(msgStepOrderNegative)
	}
	s.order = order
	s.Touch()
	return nil
}

// SetAssignedRole assigns the step to a role, or clears the assignment when
// roleID is nil.
func (s *Step) SetAssignedRole(roleID *int64) error {
	if roleID != nil && *roleID <= 0 {
		return domain.Violation(msgInvalidRoleID)
	}
	s.assignedRoleID = copyInt64(roleID)
	s.Touch()
	return nil
}

// matches reports whether id names this step, either by its storage
// identity or by its process-scoped sequence number.
func (s *Step) matches(id int64) bool {
	if s.ID() != 0 && s.ID() == id {
		return true
	}
	return s.seq != 0 && int64(s.seq) == id
}

// State returns a snapshot of the step.
func (s *Step) State() StepState {
	return StepState{
		ID:             s.ID(),
		Seq:            s.seq,
		ProcessID:      s.processID,
		Name:           s.name,
		Order:          s.order,
		AssignedRoleID: copyInt64(s.assignedRoleID),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}
