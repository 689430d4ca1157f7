// Package handler holds the echo handlers of the API.
package handler

import (
	"net/http"

	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/delivery/api/validator"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// validationFailed renders field details when the validator produced them.
func validationFailed(c echo.Context, err error) error {
	if verr, ok := errors.AsType[*validator.ValidationError](err); ok {
		return response.ValidationError(c, verr.Fields)
	}

	return response.ValidationError(c, nil)
}

func paramID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func hasCode(err error, target domainerrors.AppError) bool {
	appErr, ok := errors.AsType[domainerrors.AppError](err)

	return ok && appErr.ErrorCode() == target.ErrorCode()
}
