package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// RoleHandler serves the roles that steps are assigned to.
type RoleHandler struct {
	svc ports.RoleService
}

// NewRoleHandler creates a new RoleHandler with the given service port.
func NewRoleHandler(svc ports.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// ListRoles handles GET /api/v1/roles.
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.svc.ListRoles(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRoleListResponse(roles))
}

// GetRole handles GET /api/v1/roles/{id}.
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	role, err := h.svc.GetRole(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRoleResponse(role))
}

// CreateRole handles POST /api/v1/roles.
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateRole(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToRoleResponse(created))
}
