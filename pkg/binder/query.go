package binder

import "net/http"

// Query creates a binder that populates struct fields tagged with `query`
// from URL query parameters.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
