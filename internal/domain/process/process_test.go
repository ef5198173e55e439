package process

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := New(stepClock(), "  Onboarding  ", int64Ptr(3), stringPtr("  hire flow "), int64Ptr(7))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if p.Name() != "Onboarding" {
		t.Errorf("Name() = %q, want %q", p.Name(), "Onboarding")
	}
	if len(p.Steps()) != 0 {
		t.Errorf("len(Steps()) = %d, want 0", len(p.Steps()))
	}
	if got := p.Description(); got == nil || *got != "hire flow" {
		t.Errorf("Description() = %v, want %q", got, "hire flow")
	}
	if got := p.DepartmentID(); got == nil || *got != 3 {
		t.Errorf("DepartmentID() = %v, want 3", got)
	}
	if got := p.CreatedBy(); got == nil || *got != 7 {
		t.Errorf("CreatedBy() = %v, want 7", got)
	}
	if p.ID() != 0 {
		t.Errorf("ID() = %d, want 0 before persistence", p.ID())
	}
	if !p.CreatedAt().Equal(baseTime) {
		t.Errorf("CreatedAt() = %v, want %v", p.CreatedAt(), baseTime)
	}
	if p.UpdatedAt() != nil {
		t.Errorf("UpdatedAt() = %v, want nil", p.UpdatedAt())
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty name", input: "", wantMsg: "Process name is required."},
		{name: "whitespace name", input: " \t\n", wantMsg: "Process name is required."},
		{name: "name too long", input: strings.Repeat("a", 201), wantMsg: "Process name too long (max 200)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(stepClock(), tt.input, nil, nil, nil)
			requireViolation(t, err, tt.wantMsg)
		})
	}
}

func TestNew_NameAtLimit(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("é", MaxNameLength)
	p, err := New(stepClock(), name, nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v, want nil for %d characters", err, MaxNameLength)
	}
	if p.Name() != name {
		t.Error("Name() changed a valid name")
	}
}

func TestNew_BlankDescriptionIsNil(t *testing.T) {
	t.Parallel()

	p, err := New(stepClock(), "Billing", nil, stringPtr("   "), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Description() != nil {
		t.Errorf("Description() = %q, want nil", *p.Description())
	}
}

func TestProcess_Setters(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)

	if err := p.SetName("  Offboarding "); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	first := p.UpdatedAt()
	requireAdvanced(t, nil, first)
	if p.Name() != "Offboarding" {
		t.Errorf("Name() = %q, want %q", p.Name(), "Offboarding")
	}

	p.SetDescription(stringPtr(" "))
	requireAdvanced(t, first, p.UpdatedAt())
	if p.Description() != nil {
		t.Errorf("Description() = %q, want nil", *p.Description())
	}

	before := p.UpdatedAt()
	p.SetDepartment(int64Ptr(9))
	requireAdvanced(t, before, p.UpdatedAt())
	if got := p.DepartmentID(); got == nil || *got != 9 {
		t.Errorf("DepartmentID() = %v, want 9", got)
	}

	before = p.UpdatedAt()
	p.SetCreatedBy(nil)
	requireAdvanced(t, before, p.UpdatedAt())
	if p.CreatedBy() != nil {
		t.Errorf("CreatedBy() = %v, want nil", *p.CreatedBy())
	}
}

func TestProcess_SetName_RejectedDoesNotTouch(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)

	requireViolation(t, p.SetName("  "), "Process name is required.")
	if p.UpdatedAt() != nil {
		t.Errorf("UpdatedAt() = %v, want nil after rejected mutation", p.UpdatedAt())
	}
	if p.Name() != "Onboarding" {
		t.Errorf("Name() = %q, want unchanged %q", p.Name(), "Onboarding")
	}
}

func TestProcess_AddStep(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)

	step, err := p.AddStep("  Collect documents ", 1, int64Ptr(4))
	if err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}

	if step.ProcessID() != p.ID() {
		t.Errorf("ProcessID() = %d, want %d", step.ProcessID(), p.ID())
	}
	if step.Name() != "Collect documents" {
		t.Errorf("Name() = %q, want %q", step.Name(), "Collect documents")
	}
	if step.Order() != 1 {
		t.Errorf("Order() = %d, want 1", step.Order())
	}
	if got := step.AssignedRoleID(); got == nil || *got != 4 {
		t.Errorf("AssignedRoleID() = %v, want 4", got)
	}
	if step.Seq() != 1 {
		t.Errorf("Seq() = %d, want 1", step.Seq())
	}
	if p.UpdatedAt() == nil {
		t.Error("process UpdatedAt() = nil, want touched after AddStep")
	}
	if len(p.Steps()) != 1 {
		t.Errorf("len(Steps()) = %d, want 1", len(p.Steps()))
	}
}

func TestProcess_AddStep_DuplicateOrder(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)

	if _, err := p.AddStep("X", 1, nil); err != nil {
		t.Fatalf("AddStep(X) error = %v", err)
	}
	touched := p.UpdatedAt()

	_, err := p.AddStep("Y", 1, nil)
	requireViolation(t, err, "A step with order 1 already exists.")

	if len(p.Steps()) != 1 {
		t.Errorf("len(Steps()) = %d, want 1", len(p.Steps()))
	}
	if !p.UpdatedAt().Equal(*touched) {
		t.Errorf("UpdatedAt() = %v, want unchanged %v", p.UpdatedAt(), touched)
	}
}

func TestProcess_AddStep_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		step    string
		order   int
		roleID  *int64
		wantMsg string
	}{
		{name: "blank name", step: "  ", order: 0, wantMsg: "Step name is required."},
		{name: "negative order", step: "A", order: -1, wantMsg: "Step order must be >= 0."},
		{name: "zero role", step: "A", order: 0, roleID: int64Ptr(0), wantMsg: "Invalid RoleId."},
		{name: "negative role", step: "A", order: 0, roleID: int64Ptr(-2), wantMsg: "Invalid RoleId."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := persistedProcess(t)
			_, err := p.AddStep(tt.step, tt.order, tt.roleID)
			requireViolation(t, err, tt.wantMsg)
			if len(p.Steps()) != 0 {
				t.Errorf("len(Steps()) = %d, want 0", len(p.Steps()))
			}
		})
	}
}

func TestProcess_AddStep_UnpersistedProcess(t *testing.T) {
	t.Parallel()

	p, err := New(stepClock(), "Draft", nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = p.AddStep("A", 0, nil)
	requireViolation(t, err, "Invalid ProcessId.")
}

func TestProcess_AddStep_OrdersStayUnique(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	orders := []int{3, 0, 3, 10, 0, 7, 10, 1}

	for _, o := range orders {
		_, _ = p.AddStep("step", o, nil)
	}

	seen := make(map[int]bool)
	for _, s := range p.Steps() {
		if seen[s.Order()] {
			t.Errorf("order %d appears twice", s.Order())
		}
		seen[s.Order()] = true
	}
	if len(p.Steps()) != 5 {
		t.Errorf("len(Steps()) = %d, want 5", len(p.Steps()))
	}
}

func TestProcess_Steps_IsCopy(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	if _, err := p.AddStep("A", 0, nil); err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}

	view := p.Steps()
	view[0] = nil

	if len(p.Steps()) != 1 || p.Steps()[0] == nil {
		t.Error("mutating the Steps() view changed the aggregate")
	}
}

func TestProcess_RemoveStep(t *testing.T) {
	t.Parallel()

	t.Run("by sequence number", func(t *testing.T) {
		t.Parallel()

		p := persistedProcess(t)
		_, _ = p.AddStep("A", 0, nil)
		b, _ := p.AddStep("B", 1, nil)

		if err := p.RemoveStep(int64(b.Seq())); err != nil {
			t.Fatalf("RemoveStep() error = %v", err)
		}
		if len(p.Steps()) != 1 || p.Steps()[0].Name() != "A" {
			t.Errorf("Steps() = %v, want only A", p.Steps())
		}
	})

	t.Run("by persisted identity", func(t *testing.T) {
		t.Parallel()

		p := persistedProcess(t)
		a, _ := p.AddStep("A", 0, nil)
		if err := a.AssignID(42); err != nil {
			t.Fatalf("AssignID() error = %v", err)
		}

		if err := p.RemoveStep(42); err != nil {
			t.Fatalf("RemoveStep() error = %v", err)
		}
		if len(p.Steps()) != 0 {
			t.Errorf("len(Steps()) = %d, want 0", len(p.Steps()))
		}
	})

	t.Run("unknown step leaves collection unchanged", func(t *testing.T) {
		t.Parallel()

		p := persistedProcess(t)
		_, _ = p.AddStep("A", 0, nil)
		touched := p.UpdatedAt()

		requireViolation(t, p.RemoveStep(99), "Step not found.")
		if len(p.Steps()) != 1 {
			t.Errorf("len(Steps()) = %d, want 1", len(p.Steps()))
		}
		if !p.UpdatedAt().Equal(*touched) {
			t.Error("UpdatedAt() changed after rejected RemoveStep")
		}
	})

	t.Run("zero never matches an unpersisted step", func(t *testing.T) {
		t.Parallel()

		p := persistedProcess(t)
		_, _ = p.AddStep("A", 0, nil)

		requireViolation(t, p.RemoveStep(0), "Step not found.")
	})
}

func TestProcess_RemoveStep_SeqIsNotReused(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	_, _ = p.AddStep("A", 0, nil)
	b, _ := p.AddStep("B", 1, nil)
	if err := p.RemoveStep(int64(b.Seq())); err != nil {
		t.Fatalf("RemoveStep() error = %v", err)
	}

	c, err := p.AddStep("C", 2, nil)
	if err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}
	if c.Seq() != 3 {
		t.Errorf("Seq() = %d, want 3 after seq 2 was freed", c.Seq())
	}

	// The high-water mark survives a storage round trip even when the
	// highest step is gone.
	if err := p.RemoveStep(int64(c.Seq())); err != nil {
		t.Fatalf("RemoveStep() error = %v", err)
	}
	restored := Restore(p.State(), stepClock())
	d, err := restored.AddStep("D", 3, nil)
	if err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}
	if d.Seq() != 4 {
		t.Errorf("Seq() = %d, want 4 after restore", d.Seq())
	}
}

func TestProcess_RemoveStep_KeepsSnapshotIntact(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	_, _ = p.AddStep("A", 0, nil)
	_, _ = p.AddStep("B", 1, nil)
	_, _ = p.AddStep("C", 2, nil)
	before := p.Steps()

	if err := p.RemoveStep(1); err != nil {
		t.Fatalf("RemoveStep() error = %v", err)
	}

	if before[0].Name() != "A" || before[1].Name() != "B" || before[2].Name() != "C" {
		t.Error("RemoveStep rewrote a previously returned Steps() view")
	}
}

func TestProcess_SetOrder_DoesNotCheckSiblings(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	_, _ = p.AddStep("A", 0, nil)
	b, _ := p.AddStep("B", 1, nil)

	if err := b.SetOrder(0); err != nil {
		t.Fatalf("SetOrder() error = %v, want nil (no sibling check)", err)
	}

	// Insertion still guards against the new duplicate.
	_, err := p.AddStep("C", 0, nil)
	requireViolation(t, err, "A step with order 0 already exists.")
}

func TestProcess_StartExecution(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)

	exec, err := p.StartExecution(55, int64Ptr(8))
	if err != nil {
		t.Fatalf("StartExecution() error = %v", err)
	}

	if exec.ProcessID() != p.ID() {
		t.Errorf("ProcessID() = %d, want %d", exec.ProcessID(), p.ID())
	}
	// The step is not required to belong to the process.
	if exec.StepID() != 55 {
		t.Errorf("StepID() = %d, want 55", exec.StepID())
	}
	if exec.Status() != StatusStarted {
		t.Errorf("Status() = %q, want %q", exec.Status(), StatusStarted)
	}
	if p.UpdatedAt() == nil {
		t.Error("process UpdatedAt() = nil, want touched after StartExecution")
	}
}

func TestProcess_StartExecution_InvalidStep(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{0, -1} {
		p := persistedProcess(t)
		_, err := p.StartExecution(id, nil)
		requireViolation(t, err, "StepId is invalid.")
		if p.UpdatedAt() != nil {
			t.Errorf("UpdatedAt() = %v, want nil after rejected StartExecution", p.UpdatedAt())
		}
	}
}

func TestProcess_StateRoundTrip(t *testing.T) {
	t.Parallel()

	p := persistedProcess(t)
	_, _ = p.AddStep("A", 2, int64Ptr(5))
	_, _ = p.AddStep("B", 4, nil)

	restored := Restore(p.State(), stepClock())

	if restored.ID() != p.ID() || restored.Name() != p.Name() {
		t.Errorf("Restore() = (%d, %q), want (%d, %q)", restored.ID(), restored.Name(), p.ID(), p.Name())
	}
	if len(restored.Steps()) != 2 {
		t.Fatalf("len(Steps()) = %d, want 2", len(restored.Steps()))
	}
	for i, s := range restored.Steps() {
		want := p.Steps()[i]
		if s.Name() != want.Name() || s.Order() != want.Order() || s.Seq() != want.Seq() {
			t.Errorf("Steps()[%d] = %+v, want %+v", i, s.State(), want.State())
		}
	}
	if !restored.UpdatedAt().Equal(*p.UpdatedAt()) {
		t.Errorf("UpdatedAt() = %v, want %v", restored.UpdatedAt(), p.UpdatedAt())
	}

	// The next step after a restore continues the sequence.
	c, err := restored.AddStep("C", 6, nil)
	if err != nil {
		t.Fatalf("AddStep() error = %v", err)
	}
	if c.Seq() != 3 {
		t.Errorf("Seq() = %d, want 3", c.Seq())
	}
}
