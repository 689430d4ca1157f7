package usecase

import (
	"context"
	"time"

	"tarjeta/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentStatusApproved is the only webhook status that changes a plan.
const PaymentStatusApproved = "approved"

// PlanUsecase applies plan transitions reported by the payment provider.
type PlanUsecase interface {
	ApplyPayment(ctx context.Context, input *PaymentNotification) (*PlanChange, error)
}

// PaymentNotification is the verified webhook payload.
type PaymentNotification struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"`
}

// PlanChange reports the outcome of a payment notification.
type PlanChange struct {
	Applied   bool        `json:"applied"`
	UserID    uuid.UUID   `json:"user_id"`
	Plan      entity.Plan `json:"plan,omitempty"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}
