// Package process holds the Process aggregate, its ordered steps, and the
// execution records that track work on those steps.
package process

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// Process is the aggregate root owning an ordered collection of steps. It
// is the only place where step order uniqueness is checked, and the entry
// point for starting executions.
type Process struct {
	domain.Entity

	name         string
	departmentID *int64
	description  *string
	createdBy    *int64
	steps        []*Step
	lastSeq      int
}

// State is the flat representation of a Process and its steps.
type State struct {
	ID           int64
	Name         string
	DepartmentID *int64
	Description  *string
	CreatedBy    *int64
	Steps        []StepState
	LastStepSeq  int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// New creates an unpersisted process with no steps. A blank description is
// stored as nil.
func New(clock domain.Clock, name string, departmentID *int64, description *string, createdBy *int64) (*Process, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	return &Process{
		Entity:       domain.NewEntity(clock),
		name:         name,
		departmentID: copyInt64(departmentID),
		description:  normalizeText(description),
		createdBy:    copyInt64(createdBy),
	}, nil
}

// Restore rehydrates a Process and its steps loaded from storage.
func Restore(s State, clock domain.Clock) *Process {
	p := &Process{
		Entity:       domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, clock),
		name:         s.Name,
		departmentID: copyInt64(s.DepartmentID),
		description:  copyString(s.Description),
		createdBy:    copyInt64(s.CreatedBy),
		steps:        make([]*Step, 0, len(s.Steps)),
		lastSeq:      s.LastStepSeq,
	}
	for _, st := range s.Steps {
		p.steps = append(p.steps, RestoreStep(st, clock))
		p.lastSeq = max(p.lastSeq, st.Seq)
	}
	return p
}

func (p *Process) Name() string         { return p.name }
func (p *Process) DepartmentID() *int64 { return copyInt64(p.departmentID) }
func (p *Process) Description() *string { return copyString(p.description) }
func (p *Process) CreatedBy() *int64    { return copyInt64(p.createdBy) }

// Steps returns the steps in insertion order. The slice is a copy; the
// steps themselves are shared.
func (p *Process) Steps() []*Step {
	out := make([]*Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Step returns the step matching stepID by identity or sequence number.
func (p *Process) Step(stepID int64) (*Step, bool) {
	for _, s := range p.steps {
		if s.matches(stepID) {
			return s, true
		}
	}
	return nil, false
}

func (p *Process) SetName(name string) error {
	name, err := validName(name)
	if err != nil {
		return err
	}
	p.name = name
	p.Touch()
	return nil
}

func (p *Process) SetDepartment(departmentID *int64) {
	p.departmentID = copyInt64(departmentID)
	p.Touch()
}

// SetDescription stores the trimmed description; blank clears it.
func (p *Process) SetDescription(description *string) {
	p.description = normalizeText(description)
	p.Touch()
}

func (p *Process) SetCreatedBy(userID *int64) {
	p.createdBy = copyInt64(userID)
	p.Touch()
}

// AddStep appends a new step bound to this process. It fails when any
// existing step already uses stepOrder. The process must be persisted
// first, since the step carries the process identity. Sequence numbers
// only grow, so one freed by RemoveStep is never handed out again.
func (p *Process) AddStep(stepName string, stepOrder int, assignedRoleID *int64) (*Step, error) {
	step, err := newStep(p.Clock(), p.ID(), stepName, stepOrder, assignedRoleID)
	if err != nil {
		return nil, err
	}

	for _, s := range p.steps {
		if s.order == stepOrder {
			return nil, domain.Violationf("A step with order %d already exists.", stepOrder)
		}
	}

	p.lastSeq++
	step.seq = p.lastSeq
	p.steps = append(p.steps, step)
	p.Touch()
	return step, nil
}

// RemoveStep drops the first step whose identity or sequence number equals
// stepID.
func (p *Process) RemoveStep(stepID int64) error {
	for i, s := range p.steps {
		if s.matches(stepID) {
			p.steps = append(p.steps[:i:i], p.steps[i+1:]...)
			p.Touch()
			return nil
		}
	}
	return domain.Violation("Step not found.")
}

// StartExecution creates a started execution of stepID within this process.
// The step is not looked up: any positive stepID is accepted.
func (p *Process) StartExecution(stepID int64, userID *int64) (*Execution, error) {
	if stepID <= 0 {
		return nil, domain.Violation(msgStepIDInvalid)
	}
	exec, err := NewExecution(p.Clock(), p.ID(), stepID, userID)
	if err != nil {
		return nil, err
	}
	p.Touch()
	return exec, nil
}

// State returns a snapshot of the process and all of its steps.
func (p *Process) State() State {
	s := State{
		ID:           p.ID(),
		Name:         p.name,
		DepartmentID: copyInt64(p.departmentID),
		Description:  copyString(p.description),
		CreatedBy:    copyInt64(p.createdBy),
		Steps:        make([]StepState, 0, len(p.steps)),
		LastStepSeq:  p.lastSeq,
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
	for _, st := range p.steps {
		s.Steps = append(s.Steps, st.State())
	}
	return s
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Violation(msgProcessNameEmpty)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", domain.Violation(msgProcessNameLong)
	}
	return name, nil
}
