// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// retrying Connect, goose schema migrations applied at startup, a health
// probe, and SQLSTATE classification helpers (duplicate key, foreign-key
// violation) used by the storage layer to translate driver errors into
// domain errors.
//
// Configuration comes from environment variables; see the field tags on
// Config for variable names and defaults.
package pg
