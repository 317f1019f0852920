package user

import (
	"errors"
	"net/http"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/validator"
	"github.com/taskhub/taskhub/svc/identity"
)

// mapError converts account service errors to transport errors. All
// credential failures collapse into a single 401 message so responses do
// not reveal whether an address is registered, confirmed, or locked.
func mapError(err error) error {
	switch {
	case validator.IsValidationError(err):
		return err
	case errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrInvalidToken),
		errors.Is(err, identity.ErrEmailNotConfirmed),
		errors.Is(err, identity.ErrAccountLocked):
		return handler.NewHTTPErrorWithMessage(http.StatusUnauthorized, "unauthorized", "invalid email or password")
	case errors.Is(err, identity.ErrUserNotFound):
		return handler.ErrNotFound
	case errors.Is(err, identity.ErrEmailTaken),
		errors.Is(err, identity.ErrUsernameTaken),
		errors.Is(err, identity.ErrUserHasDependents):
		return handler.NewHTTPErrorWithMessage(http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, identity.ErrSameEmail):
		return handler.NewHTTPErrorWithMessage(http.StatusBadRequest, "bad_request", err.Error())
	default:
		return err
	}
}
