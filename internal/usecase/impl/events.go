// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/service"
)

// eventEmitter publishes domain events after the state change they describe
// has been committed. Publish failures are logged and never fail the operation.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e *eventEmitter) emit(ctx context.Context, eventType, subjectID string, attributes map[string]string) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SubjectID:  subjectID,
		Attributes: attributes,
		OccurredAt: e.now().UTC(),
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish event",
			slog.String("type", eventType),
			slog.String("subject_id", subjectID),
			slog.Any("error", err),
		)
	}
}
