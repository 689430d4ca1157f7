package middleware

import (
	"crypto/subtle"
	"log/slog"

	"tarjeta/config"
	"tarjeta/internal/delivery/api/response"
	deliverycontext "tarjeta/internal/delivery/context"
	domainerrors "tarjeta/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderWebhookSecret carries the shared secret of the payment provider.
const HeaderWebhookSecret = "X-Webhook-Secret"

// WebhookMiddleware authenticates inbound webhooks by shared secret.
type WebhookMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewWebhookMiddleware builds the middleware. An empty secret rejects every call.
func NewWebhookMiddleware(cfg *config.Config, logger *slog.Logger) *WebhookMiddleware {
	var secret []byte
	if cfg.Webhook != nil {
		secret = []byte(cfg.Webhook.Secret)
	}

	return &WebhookMiddleware{secret: secret, logger: logger}
}

// Verify compares the secret header in constant time.
func (m *WebhookMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		got := []byte(c.Request().Header.Get(HeaderWebhookSecret))
		if len(m.secret) == 0 || subtle.ConstantTimeCompare(got, m.secret) != 1 {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected webhook", slog.String("remote_ip", c.RealIP()))

			return response.HandleAppError(c, domainerrors.ErrInvalidWebhookSecret)
		}

		return next(c)
	}
}
