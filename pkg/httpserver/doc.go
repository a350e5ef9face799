// Package httpserver runs the alert daemon's HTTP server with graceful
// shutdown.
//
// Run listens, executes start hooks and blocks until the context is cancelled,
// SIGINT/SIGTERM arrives or the listener fails. Shutdown first runs drain hooks,
// which must end long-lived responses such as SSE streams, then waits for
// in-flight requests up to the shutdown timeout and finally runs stop hooks.
//
// The server sets no write timeout: alert streams stay open for the lifetime of
// a page.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//	    httpserver.WithLogger(log),
//	    httpserver.WithDrainHook(func() { _ = alertsSvc.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
