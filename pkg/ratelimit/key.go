package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc extracts a rate limit key from an HTTP request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by client IP. X-Forwarded-For is honored when
// present since the server normally sits behind a reverse proxy.
func ByClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First address in the list is the originating client.
		if idx := strings.IndexByte(fwd, ','); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ByEndpoint prefixes the given key function with the request path so each
// endpoint gets an independent counter.
func ByEndpoint(keyFn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		return r.URL.Path + ":" + keyFn(r)
	}
}
