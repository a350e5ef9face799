package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// HealthCheck is a named dependency probe.
type HealthCheck struct {
	Name  string
	Check func(context.Context) error
}

// HealthCheckHandler answers "ALIVE" when no checks are given (liveness) and
// otherwise "READY" or 503 "NOT_READY" after running every check.
func HealthCheckHandler(log *slog.Logger, checks ...HealthCheck) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, c := range checks {
			if err := c.Check(r.Context()); err != nil {
				log.LogAttrs(r.Context(), slog.LevelError, "readiness check failed",
					logger.Component(c.Name),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
