// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// ProcessHandler handles HTTP requests for process CRUD, nested step
// operations, and starting executions.
type ProcessHandler struct {
	svc  ports.ProcessService
	exec ports.ExecutionService
}

// NewProcessHandler creates a new ProcessHandler. The execution service
// serves the execution listing nested under a process.
func NewProcessHandler(svc ports.ProcessService, exec ports.ExecutionService) *ProcessHandler {
	return &ProcessHandler{svc: svc, exec: exec}
}

// ListProcesses handles GET /api/v1/processes.
func (h *ProcessHandler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	processes, err := h.svc.ListProcesses(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProcessListResponse(processes))
}

// CreateProcess handles POST /api/v1/processes.
func (h *ProcessHandler) CreateProcess(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProcessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProcess(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProcessResponse(created))
}

// GetProcess handles GET /api/v1/processes/{id}.
func (h *ProcessHandler) GetProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProcess(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProcessResponse(p))
}

// UpdateProcess handles PATCH /api/v1/processes/{id}.
func (h *ProcessHandler) UpdateProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateProcessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProcess(r.Context(), id, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProcessResponse(updated))
}

// DeleteProcess handles DELETE /api/v1/processes/{id}.
func (h *ProcessHandler) DeleteProcess(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteProcess(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddStep handles POST /api/v1/processes/{id}/steps.
func (h *ProcessHandler) AddStep(w http.ResponseWriter, r *http.Request) {
	processID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddStepRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	step, err := h.svc.AddStep(r.Context(), processID, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToStepResponse(step))
}

// UpdateStep handles PATCH /api/v1/processes/{id}/steps/{stepId}.
func (h *ProcessHandler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id", "stepId")
	if !ok {
		return
	}

	var req dto.UpdateStepRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	step, err := h.svc.UpdateStep(r.Context(), ids[0], ids[1], req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStepResponse(step))
}

// RemoveStep handles DELETE /api/v1/processes/{id}/steps/{stepId}. The
// step may be named by identity or by sequence number.
func (h *ProcessHandler) RemoveStep(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "id", "stepId")
	if !ok {
		return
	}

	if err := h.svc.RemoveStep(r.Context(), ids[0], ids[1]); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListExecutions handles GET /api/v1/processes/{id}/executions.
func (h *ProcessHandler) ListExecutions(w http.ResponseWriter, r *http.Request) {
	processID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	executions, err := h.exec.ListExecutions(r.Context(), processID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExecutionListResponse(executions))
}

// StartExecution handles POST /api/v1/processes/{id}/executions.
func (h *ProcessHandler) StartExecution(w http.ResponseWriter, r *http.Request) {
	processID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StartExecutionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exec, err := h.svc.StartExecution(r.Context(), processID, req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToExecutionResponse(exec))
}
