package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/process-service/internal/app/context"
)

// AppContext gives every request its own appctx.RequestContext, reachable
// through appctx.FromContext. Services commit it themselves; work still
// queued when the handler returns was never persisted and is reported at
// warn level.
func AppContext(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))

			if n := rc.Pending(); n > 0 {
				logger.WarnContext(r.Context(), "request finished with uncommitted actions",
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("pending", n),
				)
			}
		})
	}
}
