// Package middleware holds the API-specific echo middleware and error handling.
package middleware

import (
	"log/slog"
	"net/http"

	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/delivery/api/validator"
	deliverycontext "tarjeta/internal/delivery/context"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error returned by a handler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if verr, ok := errors.AsType[*validator.ValidationError](err); ok {
		_ = response.ValidationError(c, verr.Fields)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), httpErrorMessage(httpErr.Code), nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode()
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.ErrorCode()
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	if status >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.ErrorCode()
	}

	return "HTTP_ERROR"
}

func httpErrorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return "Método no permitido"
	case http.StatusRequestEntityTooLarge:
		return "La solicitud excede el tamaño máximo permitido"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.Message()
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.Message()
	case http.StatusTooManyRequests:
		return "Demasiadas solicitudes, intenta más tarde"
	}
	if status >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.Message()
	}

	return "Solicitud inválida"
}
