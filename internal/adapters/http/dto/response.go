// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/process-service/internal/domain/audit"
	"github.com/jsamuelsen11/process-service/internal/domain/org"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
)

// ProcessResponse represents a single process with its steps.
type ProcessResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	DepartmentID *int64         `json:"department_id"`
	Description  *string        `json:"description"`
	CreatedBy    *int64         `json:"created_by"`
	Steps        []StepResponse `json:"steps"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    *string        `json:"updated_at"`
}

// ProcessListResponse represents a list of processes in HTTP responses.
type ProcessListResponse struct {
	Processes []ProcessResponse `json:"processes"`
	Count     int               `json:"count"`
}

// StepResponse represents a single process step.
type StepResponse struct {
	ID             int64   `json:"id"`
	Seq            int     `json:"seq"`
	ProcessID      int64   `json:"process_id"`
	Name           string  `json:"name"`
	Order          int     `json:"order"`
	AssignedRoleID *int64  `json:"assigned_role_id"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
}

// ExecutionResponse represents a single execution of a process step.
type ExecutionResponse struct {
	ID          int64   `json:"id"`
	ProcessID   int64   `json:"process_id"`
	StepID      int64   `json:"step_id"`
	UserID      *int64  `json:"user_id"`
	Status      string  `json:"status"`
	StartedAt   *string `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
	Remarks     *string `json:"remarks"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// ExecutionListResponse represents the executions of a process.
type ExecutionListResponse struct {
	Executions []ExecutionResponse `json:"executions"`
	Count      int                 `json:"count"`
}

// RoleResponse represents a role steps can be assigned to.
type RoleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// RoleListResponse represents all roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Count int            `json:"count"`
}

// AuditEntryResponse represents a single audit trail entry.
type AuditEntryResponse struct {
	ID        int64   `json:"id"`
	Entity    string  `json:"entity"`
	EntityID  int64   `json:"entity_id"`
	Action    string  `json:"action"`
	ActorID   *int64  `json:"actor_id"`
	Detail    *string `json:"detail"`
	CreatedAt string  `json:"created_at"`
}

// AuditListResponse represents a filtered audit listing.
type AuditListResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
	Count   int                  `json:"count"`
}

// ToProcessResponse converts a Process aggregate to an HTTP response DTO.
// Steps are always present, as an empty array when there are none.
func ToProcessResponse(p *process.Process) ProcessResponse {
	steps := p.Steps()
	resp := ProcessResponse{
		ID:           p.ID(),
		Name:         p.Name(),
		DepartmentID: p.DepartmentID(),
		Description:  p.Description(),
		CreatedBy:    p.CreatedBy(),
		Steps:        make([]StepResponse, len(steps)),
		CreatedAt:    formatTime(p.CreatedAt()),
		UpdatedAt:    formatTimePtr(p.UpdatedAt()),
	}
	for i, s := range steps {
		resp.Steps[i] = ToStepResponse(s)
	}
	return resp
}

// ToProcessListResponse converts processes to an HTTP list response DTO.
func ToProcessListResponse(processes []*process.Process) ProcessListResponse {
	items := make([]ProcessResponse, len(processes))
	for i, p := range processes {
		items[i] = ToProcessResponse(p)
	}
	return ProcessListResponse{
		Processes: items,
		Count:     len(items),
	}
}

// ToStepResponse converts a Step to an HTTP response DTO.
func ToStepResponse(s *process.Step) StepResponse {
	return StepResponse{
		ID:             s.ID(),
		Seq:            s.Seq(),
		ProcessID:      s.ProcessID(),
		Name:           s.Name(),
		Order:          s.Order(),
		AssignedRoleID: s.AssignedRoleID(),
		CreatedAt:      formatTime(s.CreatedAt()),
		UpdatedAt:      formatTimePtr(s.UpdatedAt()),
	}
}

// ToExecutionResponse converts an Execution to an HTTP response DTO.
func ToExecutionResponse(e *process.Execution) ExecutionResponse {
	return ExecutionResponse{
		ID:          e.ID(),
		ProcessID:   e.ProcessID(),
		StepID:      e.StepID(),
		UserID:      e.UserID(),
		Status:      e.Status().String(),
		StartedAt:   formatTimePtr(e.StartedAt()),
		CompletedAt: formatTimePtr(e.CompletedAt()),
		Remarks:     e.Remarks(),
		CreatedAt:   formatTime(e.CreatedAt()),
		UpdatedAt:   formatTimePtr(e.UpdatedAt()),
	}
}

// ToExecutionListResponse converts executions to an HTTP list response DTO.
func ToExecutionListResponse(executions []*process.Execution) ExecutionListResponse {
	items := make([]ExecutionResponse, len(executions))
	for i, e := range executions {
		items[i] = ToExecutionResponse(e)
	}
	return ExecutionListResponse{
		Executions: items,
		Count:      len(items),
	}
}

// ToRoleResponse converts a Role to an HTTP response DTO.
func ToRoleResponse(r *org.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   formatTime(r.CreatedAt()),
		UpdatedAt:   formatTimePtr(r.UpdatedAt()),
	}
}

// ToRoleListResponse converts roles to an HTTP list response DTO.
func ToRoleListResponse(roles []*org.Role) RoleListResponse {
	items := make([]RoleResponse, len(roles))
	for i, r := range roles {
		items[i] = ToRoleResponse(r)
	}
	return RoleListResponse{Roles: items, Count: len(items)}
}

// ToAuditListResponse converts audit entries to an HTTP list response DTO.
func ToAuditListResponse(entries []*audit.Entry) AuditListResponse {
	items := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = AuditEntryResponse{
			ID:        e.ID(),
			Entity:    e.EntityName(),
			EntityID:  e.EntityID(),
			Action:    string(e.Action()),
			ActorID:   e.ActorID(),
			Detail:    e.Detail(),
			CreatedAt: formatTime(e.CreatedAt()),
		}
	}
	return AuditListResponse{
		Entries: items,
		Count:   len(items),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
