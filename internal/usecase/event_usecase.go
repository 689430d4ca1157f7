package usecase

import (
	"context"

	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
)

// EventUsecase reacts to domain events delivered by the pub/sub push endpoint.
type EventUsecase interface {
	// Handle processes one event. Errors matching IsRetryable ask the broker to redeliver.
	Handle(ctx context.Context, event *service.DomainEvent) error
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError marks err as transient.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err, or anything it wraps, was marked transient.
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}
