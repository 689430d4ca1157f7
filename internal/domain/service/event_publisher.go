package service

import (
	"context"
	"time"
)

// Event types published by the application.
const (
	EventPlanChanged      = "plan.changed"
	EventUserDeleted      = "user.deleted"
	EventCardDeleted      = "card.deleted"
	EventMessageBroadcast = "message.broadcast"
)

// DomainEvent is a fact about the system published for asynchronous consumers.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event. Delivery is at-most-once from the caller's point of view.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
