package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskhub/taskhub/pkg/logger"
	"github.com/taskhub/taskhub/pkg/validator"
)

// JSONErrorHandler returns an ErrorHandler that renders errors as JSON
// using the standard envelope. Server errors are logged at error level,
// client errors at warn. A nil log disables logging.
func JSONErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	return func(ctx C, err error) {
		status := http.StatusInternalServerError
		detail := errorToDetail(err, &status)

		if log != nil {
			level := slog.LevelWarn
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(ctx, level, "request failed",
				slog.String("path", ctx.Request().URL.Path),
				slog.Int("status", status),
				logger.Error(err),
			)
		}

		resp := jsonResponse{status: status, body: JSONResponse{Error: detail}}
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil && log != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}

// BindErrorHandler wraps JSONErrorHandler, converting binder failures into
// 400 responses instead of 500s.
func BindErrorHandler[C Context](log *slog.Logger, bindErrs ...error) ErrorHandler[C] {
	jsonHandler := JSONErrorHandler[C](log)
	return func(ctx C, err error) {
		if validator.IsValidationError(err) {
			jsonHandler(ctx, err)
			return
		}
		for _, bindErr := range bindErrs {
			if errors.Is(err, bindErr) {
				jsonHandler(ctx, NewHTTPErrorWithMessage(http.StatusBadRequest, "bad_request", err.Error()))
				return
			}
		}
		jsonHandler(ctx, err)
	}
}
