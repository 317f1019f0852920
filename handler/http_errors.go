package handler

import "net/http"

// HTTPError represents an HTTP error with a status code and a stable
// machine-readable key clients can switch on.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Error key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// NewHTTPErrorWithMessage creates an HTTP error carrying a human-readable
// message alongside the key.
func NewHTTPErrorWithMessage(code int, key, message string) HTTPErrorWithMessage {
	return HTTPErrorWithMessage{HTTPError: HTTPError{Code: code, Key: key}, Message: message}
}

// HTTPErrorWithMessage is an HTTPError with an explicit response message.
type HTTPErrorWithMessage struct {
	HTTPError
	Message string
}

// Error implements the error interface.
func (e HTTPErrorWithMessage) Error() string {
	return e.Message
}
