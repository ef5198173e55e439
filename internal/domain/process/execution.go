package process

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// Execution records one attempt, by zero or one user, to carry out one step
// of a process. ProcessID and StepID are plain references: they are checked
// for positivity only, never resolved against an actual Process.
//
// An Execution is always created started. After creation it is mutated
// directly, not through its Process.
type Execution struct {
	domain.Entity

	processID   int64
	stepID      int64
	userID      *int64
	status      Status
	startedAt   *time.Time
	completedAt *time.Time
	remarks     *string
}

// ExecutionState is the flat representation of an Execution.
type ExecutionState struct {
	ID          int64
	ProcessID   int64
	StepID      int64
	UserID      *int64
	Status      Status
	StartedAt   *time.Time
	CompletedAt *time.Time
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewExecution creates a started execution of stepID within processID.
// userID is stored as given.
func NewExecution(clock domain.Clock, processID, stepID int64, userID *int64) (*Execution, error) {
	if processID <= 0 {
		return nil, domain.Violation("ProcessId is invalid.")
	}
	if stepID <= 0 {
		return nil, domain.Violation(msgStepIDInvalid)
	}

	e := &Execution{
		Entity:    domain.NewEntity(clock),
		processID: processID,
		stepID:    stepID,
		userID:    copyInt64(userID),
		status:    StatusStarted,
	}
	now := e.Now()
	e.startedAt = &now
	return e, nil
}

// RestoreExecution rehydrates an Execution loaded from storage.
func RestoreExecution(s ExecutionState, clock domain.Clock) *Execution {
	return &Execution{
		Entity:      domain.RestoreEntity(s.ID, s.CreatedAt, s.UpdatedAt, clock),
		processID:   s.ProcessID,
		stepID:      s.StepID,
		userID:      copyInt64(s.UserID),
		status:      s.Status,
		startedAt:   copyTime(s.StartedAt),
		completedAt: copyTime(s.CompletedAt),
		remarks:     copyString(s.Remarks),
	}
}

func (e *Execution) ProcessID() int64        { return e.processID }
func (e *Execution) StepID() int64           { return e.stepID }
func (e *Execution) UserID() *int64          { return copyInt64(e.userID) }
func (e *Execution) Status() Status          { return e.status }
func (e *Execution) StartedAt() *time.Time   { return copyTime(e.startedAt) }
func (e *Execution) CompletedAt() *time.Time { return copyTime(e.completedAt) }
func (e *Execution) Remarks() *string        { return copyString(e.remarks) }

// SetStep points the execution at another step.
func (e *Execution) SetStep(stepID int64) error {
	if stepID <= 0 {
		return domain.Violation(msgStepIDInvalid)
	}
	e.stepID = stepID
	e.Touch()
	return nil
}

// SetUser replaces the actor. Any value is accepted, including nil.
func (e *Execution) SetUser(userID *int64) {
	e.userID = copyInt64(userID)
	e.Touch()
}

// SetStatus forces the status without any transition check.
func (e *Execution) SetStatus(status Status) error {
	if !status.IsValid() {
		return domain.Violation("Status is invalid.")
	}
	e.status = status
	e.Touch()
	return nil
}

// SetRemarks stores the trimmed text; nil or blank text clears the remarks.
func (e *Execution) SetRemarks(text *string) {
	e.remarks = normalizeText(text)
	e.Touch()
}

// SetTimes overwrites both time window bounds.
func (e *Execution) SetTimes(startedAt, completedAt *time.Time) {
	e.startedAt = copyTime(startedAt)
	e.completedAt = copyTime(completedAt)
	e.Touch()
}

// Start (re)starts the execution now and discards any completion time. The
// actor is replaced only when userID is provided; None leaves it untouched.
func (e *Execution) Start(userID domain.Optional[int64]) {
	e.status = StatusStarted
	now := e.Now()
	e.startedAt = &now
	e.completedAt = nil
	if v, ok := userID.Get(); ok {
		e.userID = &v
	}
	e.Touch()
}

// Complete marks the execution completed now. Remarks are replaced only by
// non-blank text.
func (e *Execution) Complete(remarks domain.Optional[string]) {
	e.finish(StatusCompleted, remarks)
}

// Cancel marks the execution cancelled now. Remarks are replaced only by
// non-blank text.
func (e *Execution) Cancel(remarks domain.Optional[string]) {
	e.finish(StatusCancelled, remarks)
}

func (e *Execution) finish(status Status, remarks domain.Optional[string]) {
	e.status = status
	now := e.Now()
	e.completedAt = &now
	if text, ok := remarks.Get(); ok {
		if r := normalizeText(&text); r != nil {
			e.remarks = r
		}
	}
	e.Touch()
}

// State returns a snapshot of the execution.
func (e *Execution) State() ExecutionState {
	return ExecutionState{
		ID:          e.ID(),
		ProcessID:   e.processID,
		StepID:      e.stepID,
		UserID:      copyInt64(e.userID),
		Status:      e.status,
		StartedAt:   copyTime(e.startedAt),
		CompletedAt: copyTime(e.completedAt),
		Remarks:     copyString(e.remarks),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func normalizeText(text *string) *string {
	if text == nil {
		return nil
	}
	t := strings.TrimSpace(*text)
	if t == "" {
		return nil
	}
	return &t
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
