package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/williamjohngardner/items-api/internal/api/shared"
	"github.com/williamjohngardner/items-api/internal/platform/logger"
)

// NewRecoverMiddleware returns a middleware that recovers from panics in
// downstream handlers, logs the panic with its stack trace, and responds
// with a generic 500 error in the standard JSON envelope.
//
// http.ErrAbortHandler is re-panicked so the server's connection-abort
// behavior is preserved.
func NewRecoverMiddleware(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log := logger.FromContextOrDefault(r.Context(), baseLogger)
				log.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
