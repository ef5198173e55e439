// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs them in this order:
//
//	RequestID → CorrelationID → Recovery → OpenTelemetry → Logging → Timeout → AppContext → router
//
// Recovery sits after the ID middleware so a recovered panic is logged with
// the request it belongs to.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Middleware is the shape shared by every constructor in this package.
type Middleware = func(http.Handler) http.Handler

// Chain composes middleware so that the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range middlewares {
			h = middlewares[len(middlewares)-1-i](h)
		}
		return h
	}
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.written {
		return
	}
	sr.status = code
	sr.written = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.written = true
	return sr.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// routePattern returns the chi pattern that matched r, such as
// "/api/v1/processes/{id}", or the raw path when no route matched yet.
// Patterns keep span names and metric labels free of entity identities.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
