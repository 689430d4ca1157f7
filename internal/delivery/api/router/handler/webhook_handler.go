package handler

import (
	"log/slog"
	"net/http"

	"tarjeta/internal/delivery/api/response"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// WebhookHandler receives payment notifications.
type WebhookHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// PaymentWebhookRequest is the payload posted by the payment provider.
type PaymentWebhookRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

// HandlePayment applies a payment notification to the user's plan.
func (h *WebhookHandler) HandlePayment(c echo.Context) error {
	var req PaymentWebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.InvalidID(c)
	}

	change, err := h.planUC.ApplyPayment(c.Request().Context(), &usecase.PaymentNotification{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Payment notification processed",
		slog.String("user_id", userID.String()),
		slog.String("status", req.Status),
		slog.Bool("applied", change.Applied),
	)

	return response.Success(c, http.StatusOK, change)
}
