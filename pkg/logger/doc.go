// Package logger builds configured log/slog loggers with typed attribute
// helpers for the identifiers used across the application.
package logger
