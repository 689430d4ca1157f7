package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type messageService struct {
	messages repository.MessageRepository
	events   *eventEmitter
	now      func() time.Time
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	Messages  repository.MessageRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewMessageService creates the broadcast message use case.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messages: params.Messages,
		events:   newEventEmitter(params.Publisher, params.Logger),
		now:      time.Now,
	}
}

// ListMessages returns broadcast messages, newest first.
func (srv *messageService) ListMessages(ctx context.Context) ([]*entity.AdminMessage, error) {
	messages, err := srv.messages.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// CreateMessage stores a message and announces it.
func (srv *messageService) CreateMessage(ctx context.Context, input *usecase.MessageInput) (*entity.AdminMessage, error) {
	message := &entity.AdminMessage{
		Title:     strings.TrimSpace(input.Title),
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: srv.now(),
	}

	if err := srv.messages.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.events.emit(ctx, service.EventMessageBroadcast, message.ID.String(), map[string]string{
		"title": message.Title,
	})

	return message, nil
}

// DeleteMessage removes a message.
func (srv *messageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := srv.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to delete message")
	}

	return nil
}
