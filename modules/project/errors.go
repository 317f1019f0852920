package project

import (
	"errors"
	"net/http"

	"github.com/taskhub/taskhub/handler"
	"github.com/taskhub/taskhub/pkg/validator"
	"github.com/taskhub/taskhub/svc/tracker"
)

// mapError converts tracker service errors to transport errors.
func mapError(err error) error {
	switch {
	case validator.IsValidationError(err):
		return err
	case errors.Is(err, tracker.ErrProjectNotFound),
		errors.Is(err, tracker.ErrTaskNotFound),
		errors.Is(err, tracker.ErrCommentNotFound),
		errors.Is(err, tracker.ErrNotMember):
		return handler.ErrNotFound
	case errors.Is(err, tracker.ErrHasDependents),
		errors.Is(err, tracker.ErrAlreadyMember),
		errors.Is(err, tracker.ErrInvalidReference):
		return handler.NewHTTPErrorWithMessage(http.StatusConflict, "conflict", err.Error())
	default:
		return err
	}
}
