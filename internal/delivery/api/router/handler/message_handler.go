package handler

import (
	"log/slog"
	"net/http"

	"tarjeta/internal/delivery/api/response"
	"tarjeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves admin broadcasts, to users read-only.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// ListMessages returns every broadcast, newest first.
func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageUC.ListMessages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMessageResponses(messages))
}

// CreateMessage broadcasts a new message.
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req usecase.MessageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	msg, err := h.messageUC.CreateMessage(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &MessageResponse{
		ID:        msg.ID,
		Title:     msg.Title,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt,
	})
}

// DeleteMessage removes a broadcast.
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.InvalidID(c)
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
