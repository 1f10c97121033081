package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/delivery/http/response"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.HandleAppError(c, fromHTTPError(httpErr, c))

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("route", c.Path()),
		slog.String("method", c.Request().Method),
	)

	_ = response.HandleAppError(c, domainerrors.ErrInternalError)
}

// fromHTTPError maps errors raised by echo itself (routing, binding, body limit) onto the envelope codes.
func fromHTTPError(httpErr *echo.HTTPError, c echo.Context) *domainerrors.BaseError {
	message, _ := httpErr.Message.(string)

	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.WithDetails(c.Request().URL.Path)
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.WithDetails(message)
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.WithDetails(message)
	}
	if message == "" {
		message = http.StatusText(httpErr.Code)
	}

	return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, "")
}
