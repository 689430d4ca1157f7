package repository

import (
	"context"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when an admin message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists admin broadcast messages.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.AdminMessage) error

	// List returns messages newest first.
	List(ctx context.Context) ([]*entity.AdminMessage, error)

	// Delete removes a message.
	Delete(ctx context.Context, id uuid.UUID) error
}
