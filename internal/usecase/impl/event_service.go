package impl

import (
	"context"
	"log/slog"

	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type eventService struct {
	cache  service.CardCache
	logger *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Cache  service.CardCache
	Logger *slog.Logger
}

// NewEventService creates the consumer for published domain events.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		cache:  params.Cache,
		logger: params.Logger,
	}
}

// Handle evicts cached public views of removed cards so every instance stops
// serving them. Other event types are only recorded.
func (srv *eventService) Handle(ctx context.Context, event *service.DomainEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("type", event.Type),
		slog.String("subject_id", event.SubjectID),
	)

	switch event.Type {
	case service.EventCardDeleted:
		return srv.evict(ctx, logger, event.SubjectID, event.Attributes["slug"])
	case service.EventUserDeleted:
		cardID, ok := event.Attributes["card_id"]
		if !ok {
			logger.Info("Deleted user had no card")

			return nil
		}

		return srv.evict(ctx, logger, cardID, event.Attributes["slug"])
	case service.EventPlanChanged, service.EventMessageBroadcast:
		logger.Info("Event received", slog.Any("attributes", event.Attributes))

		return nil
	default:
		logger.Warn("Ignoring unknown event type")

		return nil
	}
}

func (srv *eventService) evict(ctx context.Context, logger *slog.Logger, rawCardID, slug string) error {
	cardID, err := uuid.Parse(rawCardID)
	if err != nil {
		return errors.Wrapf(err, "invalid card id %q", rawCardID)
	}
	if slug == "" {
		return errors.Errorf("event for card %s carries no slug", cardID)
	}

	if err := srv.cache.Invalidate(ctx, &entity.Card{ID: cardID, Slug: slug}); err != nil {
		return usecase.NewRetryableError(err)
	}
	logger.Info("Evicted cached card", slog.String("slug", slug))

	return nil
}
