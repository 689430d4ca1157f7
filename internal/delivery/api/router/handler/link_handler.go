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

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// LinkHandler serves the links of the caller's card.
type LinkHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// ListLinks returns the links in display order.
func (h *LinkHandler) ListLinks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	links, err := h.linkUC.ListMyLinks(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLinkResponses(links))
}

// CreateLink adds a link to the caller's card.
func (h *LinkHandler) CreateLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req usecase.LinkInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	link, err := h.linkUC.CreateLink(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newLinkResponse(link))
}

// UpdateLink edits one of the caller's links.
func (h *LinkHandler) UpdateLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	linkID, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	var req usecase.LinkInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	link, err := h.linkUC.UpdateLink(c.Request().Context(), userID, linkID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLinkResponse(link))
}

// DeleteLink removes one of the caller's links.
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	linkID, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	if err := h.linkUC.DeleteLink(c.Request().Context(), userID, linkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
