// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers, and structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then shuts the server down with a configurable deadline. All
// public errors wrap the ErrStart and ErrShutdown sentinels so they can be
// inspected with errors.Is.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
