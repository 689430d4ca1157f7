package usecase

import (
	"context"

	"tarjeta/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines account management available to administrators.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ToggleActive(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ExtendPlan(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	RegenerateLicense(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	// DeleteUser removes the user, their card and its links in one transaction.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// MessageUsecase manages admin broadcast messages.
type MessageUsecase interface {
	ListMessages(ctx context.Context) ([]*entity.AdminMessage, error)
	CreateMessage(ctx context.Context, input *MessageInput) (*entity.AdminMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// MessageInput defines the data required to broadcast a message.
type MessageInput struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}
