// Package ratelimit provides fixed-window rate limiting with pluggable
// counter stores and HTTP middleware.
//
// The in-memory store suits single-instance deployments and tests; the
// Redis store coordinates limits across instances:
//
//	store, _ := ratelimit.NewRedisStore(client, "rl")
//	limiter, _ := ratelimit.NewFixedWindow(store, 10, time.Minute)
//	r.Use(ratelimit.Middleware(limiter, ratelimit.ByClientIP))
package ratelimit
