// Package handler provides type-safe HTTP handlers with generic request
// binding and a standard JSON response envelope.
//
// Handlers are generic over a Context and a request type. Wrap converts a
// typed handler to http.HandlerFunc, running the configured binders first:
//
//	h := handler.Wrap(
//		handler.HandlerFunc[handler.Context, createTaskRequest](createTask),
//		handler.WithBinders[handler.Context, createTaskRequest](binder.JSON()),
//	)
//	r.Post("/", h)
//
// All responses share the JSONResponse envelope: successful responses carry
// data, failures carry an error object with a stable code, message, and
// per-field validation details when applicable.
package handler
