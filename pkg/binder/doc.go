// Package binder extracts request data into Go structs from JSON bodies,
// query strings, and URL path parameters.
//
// Binders are plain functions with the signature
// func(*http.Request, any) error so they compose with any handler wrapper:
//
//	type loginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	var req loginRequest
//	if err := binder.JSON()(r, &req); err != nil { ... }
//
// JSON binding is strict: unknown fields and trailing data are rejected and
// bodies are capped at DefaultMaxJSONSize. Query and path binding use the
// `query` and `path` struct tags and support types implementing
// encoding.TextUnmarshaler such as uuid.UUID.
package binder
