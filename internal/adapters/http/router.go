// Package http is the inbound HTTP adapter of the process service: routes,
// handlers and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/process-service/internal/adapters/http/handlers"
)

// APIPrefix is where the versioned API is mounted.
const APIPrefix = "/api/v1"

// NewRouter mounts the health endpoints and the versioned API. middlewares
// wrap every route, outermost first. Unknown routes and methods answer
// with problem documents like every other error.
func NewRouter(
	processHandler *handlers.ProcessHandler,
	executionHandler *handlers.ExecutionHandler,
	auditHandler *handlers.AuditHandler,
	roleHandler *handlers.RoleHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route matches "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed,
			req.Method+" is not supported on "+req.URL.Path)
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(APIPrefix, func(r chi.Router) {
		processRoutes(r, processHandler)
		executionRoutes(r, executionHandler)
		r.Get("/roles", roleHandler.ListRoles)
		r.Post("/roles", roleHandler.CreateRole)
		r.Get("/roles/{id}", roleHandler.GetRole)
		r.Get("/audit-logs", auditHandler.ListEntries)
	})
	return r
}

// processRoutes covers processes and everything created through one:
// steps, and new executions. Routes stay flat so chi reports patterns
// without trailing slashes to the logging and tracing middleware.
func processRoutes(r chi.Router, h *handlers.ProcessHandler) {
	r.Get("/processes", h.ListProcesses)
	r.Post("/processes", h.CreateProcess)
	r.Get("/processes/{id}", h.GetProcess)
	r.Patch("/processes/{id}", h.UpdateProcess)
	r.Delete("/processes/{id}", h.DeleteProcess)

	r.Post("/processes/{id}/steps", h.AddStep)
	r.Patch("/processes/{id}/steps/{stepId}", h.UpdateStep)
	r.Delete("/processes/{id}/steps/{stepId}", h.RemoveStep)

	r.Get("/processes/{id}/executions", h.ListExecutions)
	r.Post("/processes/{id}/executions", h.StartExecution)
}

// executionRoutes covers an execution once it exists.
func executionRoutes(r chi.Router, h *handlers.ExecutionHandler) {
	r.Get("/executions/{id}", h.GetExecution)
	r.Delete("/executions/{id}", h.DeleteExecution)
	r.Post("/executions/{id}/start", h.StartExecution)
	r.Post("/executions/{id}/complete", h.CompleteExecution)
	r.Post("/executions/{id}/cancel", h.CancelExecution)
}
