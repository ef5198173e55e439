package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/domain"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// AuditHandler serves the audit trail.
type AuditHandler struct {
	svc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler with the given service port.
func NewAuditHandler(svc ports.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// ListEntries handles GET /api/v1/audit-logs?entity=&entity_id=. Both
// query parameters are optional.
func (h *AuditHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ports.AuditFilter{Entity: query.Get("entity")}

	if raw := query.Get("entity_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{dto.FieldPath(dto.LocationQuery, "entity_id"): "must be a positive integer"},
			})
			return
		}
		filter.EntityID = id
	}

	entries, err := h.svc.ListEntries(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuditListResponse(entries))
}
