package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString is returned when the connection URL cannot be parsed.
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")

	// ErrRedisNotReady is returned when the server does not respond to ping within the retry budget.
	ErrRedisNotReady = errors.New("redis did not become ready")

	// ErrHealthcheckFailed is returned when the healthcheck ping fails.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
