package handler

import (
	"log/slog"
	"net/http"

	"tarjeta/internal/delivery/api/middleware"
	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler holds dependencies for the owner's card endpoints
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// GetMyCard returns the caller's card.
func (h *CardHandler) GetMyCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	card, err := h.cardUC.GetMyCard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCardResponse(card))
}

// CreateMyCard creates the caller's card and assigns its slug.
func (h *CardHandler) CreateMyCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req usecase.CardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	card, err := h.cardUC.CreateMyCard(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCardResponse(card))
}

// UpdateMyCard replaces every editable field of the caller's card.
func (h *CardHandler) UpdateMyCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req usecase.CardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	card, err := h.cardUC.UpdateMyCard(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCardResponse(card))
}

// DeleteMyCard removes the caller's card and its links.
func (h *CardHandler) DeleteMyCard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if err := h.cardUC.DeleteMyCard(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GenerateQR stores the QR image URL on the caller's card.
func (h *CardHandler) GenerateQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	card, err := h.cardUC.GenerateQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCardResponse(card))
}
