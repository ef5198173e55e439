package process

import "testing"

func TestStep_Setters(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	step, err := p.AddStep("Review", 0, nil)
	if err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}
	if step.UpdatedAt() != nil {
		t.Fatalf("UpdatedAt() = %v, want nil for a fresh step", step.UpdatedAt())
	}

	if err := step.SetName("  Approve "); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if step.Name() != "Approve" {
		t.Errorf("Name() = %q, want %q", step.Name(), "Approve")
	}
	before := step.UpdatedAt()
	requireAdvanced(t, nil, before)

	if err := step.SetOrder(5); err != nil {
		t.Fatalf("SetOrder() error = %v", err)
	}
	if step.Order() != 5 {
		t.Errorf("Order() = %d, want 5", step.Order())
	}
	requireAdvanced(t, before, step.UpdatedAt())
	before = step.UpdatedAt()

	if err := step.SetAssignedRole(int64Ptr(2)); err != nil {
		t.Fatalf("SetAssignedRole(2) error = %v", err)
	}
	if got := step.AssignedRoleID(); got == nil || *got != 2 {
		t.Errorf("AssignedRoleID() = %v, want 2", got)
	}
	requireAdvanced(t, before, step.UpdatedAt())
	before = step.UpdatedAt()

	if err := step.SetAssignedRole(nil); err != nil {
		t.Fatalf("SetAssignedRole(nil) error = %v", err)
	}
	if step.AssignedRoleID() != nil {
		t.Errorf("AssignedRoleID() = %v, want nil", *step.AssignedRoleID())
	}
	if !step.UpdatedAt().After(*before) {
		t.Errorf("UpdatedAt() = %v, want after %v when clearing role", step.UpdatedAt(), before)
	}
}

func TestStep_SettersRejectInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Step) error
		wantMsg string
	}{
		{
			name:    "blank name",
			mutate:  func(s *Step) error { return s.SetName("\t") },
			wantMsg: "Step name is required.",
		},
		{
			name:    "negative order",
			mutate:  func(s *Step) error { return s.SetOrder(-3) },
			wantMsg: "Step order must be >= 0.",
		},
		{
			name:    "zero role",
			mutate:  func(s *Step) error { return s.SetAssignedRole(int64Ptr(0)) },
			wantMsg: "Invalid RoleId.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := persistedProcess(t)
			step, err := p.AddStep("Review", 1, int64Ptr(3))
			if err != nil {
				t.Fatalf("AddStep() error = %v", err)
			}

			requireViolation(t, tt.mutate(step), tt.wantMsg)

			if step.UpdatedAt() != nil {
				t.Errorf("UpdatedAt() = %v, want nil after rejected mutation", step.UpdatedAt())
			}
			if step.Name() != "Review" || step.Order() != 1 || *step.AssignedRoleID() != 3 {
				t.Errorf("step changed after rejected mutation: %+v", step.State())
			}
		})
	}
}

func TestNewStep_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		processID int64
		step      string
		order     int
		roleID    *int64
		wantMsg   string
	}{
		{name: "zero process", processID: 0, step: "A", wantMsg: "Invalid ProcessId."},
		{name: "negative process", processID: -1, step: "A", wantMsg: "Invalid ProcessId."},
		{name: "blank name", processID: 1, step: "", wantMsg: "Step name is required."},
		{name: "negative order", processID: 1, step: "A", order: -1, wantMsg: "Step order must be >= 0."},
		{name: "invalid role", processID: 1, step: "A", roleID: int64Ptr(-1), wantMsg: "Invalid RoleId."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newStep(stepClock(), tt.processID, tt.step, tt.order, tt.roleID)
			requireViolation(t, err, tt.wantMsg)
		})
	}
}

func TestNewStep_ValidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		step   string
		order  int
		roleID *int64
	}{
		{name: "order zero unassigned", step: "A", order: 0},
		{name: "large gap order", step: " Sign off ", order: 1000},
		{name: "assigned role", step: "Check", order: 2, roleID: int64Ptr(11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := newStep(stepClock(), 4, tt.step, tt.order, tt.roleID)
			if err != nil {
				t.Fatalf("newStep() error = %v", err)
			}
			if s.ProcessID() != 4 || s.Order() != tt.order {
				t.Errorf("step = %+v, want process 4 order %d", s.State(), tt.order)
			}
			if s.ID() != 0 || s.UpdatedAt() != nil {
				t.Errorf("ID/UpdatedAt = %d/%v, want 0/nil", s.ID(), s.UpdatedAt())
			}
			if (tt.roleID == nil) != (s.AssignedRoleID() == nil) {
				t.Errorf("AssignedRoleID() = %v, want %v", s.AssignedRoleID(), tt.roleID)
			}
		})
	}
}
