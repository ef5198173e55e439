package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/process-service/internal/adapters/http/dto"
)

// Recovery turns a panic in a downstream handler into a logged 500 Problem
// Details response. The panic value never reaches the client. When the
// handler already started the response, only the log entry is written.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("route", routePattern(r)),
					slog.String("method", r.Method),
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
				)

				if !sr.written {
					dto.WriteErrorResponse(sr, r, fmt.Errorf("handler panic: %v", v))
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
