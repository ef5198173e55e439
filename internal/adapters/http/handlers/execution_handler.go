package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/domain/process"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// ExecutionHandler handles HTTP requests for individual executions.
type ExecutionHandler struct {
	svc ports.ExecutionService
}

// NewExecutionHandler creates a new ExecutionHandler with the given service port.
func NewExecutionHandler(svc ports.ExecutionService) *ExecutionHandler {
	return &ExecutionHandler{svc: svc}
}

// GetExecution handles GET /api/v1/executions/{id}.
func (h *ExecutionHandler) GetExecution(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	exec, err := h.svc.GetExecution(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExecutionResponse(exec))
}

// DeleteExecution handles DELETE /api/v1/executions/{id}.
func (h *ExecutionHandler) DeleteExecution(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteExecution(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartExecution handles POST /api/v1/executions/{id}/start. The body is
// optional.
func (h *ExecutionHandler) StartExecution(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RestartExecutionRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	exec, err := h.svc.StartExecution(r.Context(), id, req.User())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExecutionResponse(exec))
}

// CompleteExecution handles POST /api/v1/executions/{id}/complete. The body
// is optional.
func (h *ExecutionHandler) CompleteExecution(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.svc.CompleteExecution)
}

// CancelExecution handles POST /api/v1/executions/{id}/cancel. The body is
// optional.
func (h *ExecutionHandler) CancelExecution(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, h.svc.CancelExecution)
}

func (h *ExecutionHandler) finish(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, id int64, remarks domain.Optional[string]) (*process.Execution, error),
) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.FinishExecutionRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	exec, err := transition(r.Context(), id, req.RemarksText())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExecutionResponse(exec))
}
