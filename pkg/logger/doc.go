// Package logger builds *slog.Logger instances for alertkit services.
//
// New assembles a text or JSON slog.Handler from functional options, attaches
// static attributes, and wraps it with a decorator that pulls request-scoped
// values (client id, request id) out of context.Context on every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "alertd"),
//		logger.WithFileOutput(logger.FileConfig{Path: "/var/log/alertd.log"}),
//		logger.WithContextValue("client_id", clientIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "alert published",
//		logger.AlertGroup(rec.ID),
//		logger.AlertType(string(rec.Type)),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
