package ratelimit

import (
	"net/http"
	"strconv"
)

// Middleware returns HTTP middleware that rate limits requests using the
// provided limiter and key function. Limited requests get a 429 with
// Retry-After set; store failures fail open so Redis outages do not take
// down authentication.
func Middleware(limiter Limiter, keyFn KeyFunc) func(http.Handler) http.Handler {
	return MiddlewareWithOptions(limiter, WithKeyFunc(keyFn))
}

// MiddlewareOption configures the rate limit middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	keyFn          KeyFunc
	skipFn         func(r *http.Request) bool
	onLimitReached http.HandlerFunc
}

// WithKeyFunc sets the key extraction function.
func WithKeyFunc(keyFn KeyFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if keyFn != nil {
			c.keyFn = keyFn
		}
	}
}

// WithSkipFunc sets a predicate that bypasses rate limiting when true.
func WithSkipFunc(skipFn func(r *http.Request) bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.skipFn = skipFn
	}
}

// WithOnLimitReached sets a custom handler for limited requests.
func WithOnLimitReached(h http.HandlerFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onLimitReached = h
		}
	}
}

// MiddlewareWithOptions returns rate limit middleware with custom behavior.
func MiddlewareWithOptions(limiter Limiter, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		keyFn: ByClientIP,
		onLimitReached: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skipFn != nil && cfg.skipFn(r) {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), cfg.keyFn(r))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				retryAfter := int(result.RetryAfter().Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				cfg.onLimitReached(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
