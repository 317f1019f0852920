package pg

import "context"

// logger is the subset of slog.Logger needed for migration logging,
// declared locally so callers can pass any structured logger.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
