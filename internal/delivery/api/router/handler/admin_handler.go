package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/domain/entity"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves account management for administrators.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// ResetPasswordRequest carries the new password chosen by the admin.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := h.now()
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u, now))
	}

	return response.Success(c, http.StatusOK, out)
}

// ToggleActive flips whether the account may use the API.
func (h *AdminHandler) ToggleActive(c echo.Context) error {
	return h.mutateUser(c, h.adminUC.ToggleActive)
}

// ExtendPlan grants one paid period.
func (h *AdminHandler) ExtendPlan(c echo.Context) error {
	return h.mutateUser(c, h.adminUC.ExtendPlan)
}

// RegenerateLicense issues a new license key.
func (h *AdminHandler) RegenerateLicense(c echo.Context) error {
	return h.mutateUser(c, h.adminUC.RegenerateLicense)
}

// ResetPassword sets a new password for the user.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if err := h.adminUC.ResetPassword(c.Request().Context(), userID, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes the user together with their card and links.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) mutateUser(c echo.Context, mutate func(context.Context, uuid.UUID) (*entity.User, error)) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	user, err := mutate(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user, h.now()))
}
