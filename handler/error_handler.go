package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/alertkit/pkg/logger"
)

// NewErrorHandler logs err (warn for 4xx, error otherwise) and answers with
// a JSON error body.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		status := StatusCode(err)
		level := slog.LevelError
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(ctx, level, "request failed",
			logger.Component("http"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			logger.Error(err),
		)

		if rerr := JSONError(err).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to write error response", logger.Error(rerr))
		}
	}
}
