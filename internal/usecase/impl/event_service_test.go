package impl

import (
	"context"
	"testing"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	mockService "tarjeta/internal/mocks/service"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventService_Handle(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()
	matchesCard := mock.MatchedBy(func(c *entity.Card) bool {
		return c.ID == cardID && c.Slug == "ana-perez"
	})

	tests := []struct {
		name          string
		event         *service.DomainEvent
		setup         func(cache *mockService.MockCardCache)
		wantErr       bool
		wantRetryable bool
	}{
		{
			name: "card deleted evicts cache",
			event: &service.DomainEvent{
				Type:       service.EventCardDeleted,
				SubjectID:  cardID.String(),
				Attributes: map[string]string{"slug": "ana-perez"},
			},
			setup: func(cache *mockService.MockCardCache) {
				cache.EXPECT().Invalidate(mock.Anything, matchesCard).Return(nil).Once()
			},
		},
		{
			name: "user deleted evicts the owned card",
			event: &service.DomainEvent{
				Type:       service.EventUserDeleted,
				SubjectID:  uuid.NewString(),
				Attributes: map[string]string{"card_id": cardID.String(), "slug": "ana-perez"},
			},
			setup: func(cache *mockService.MockCardCache) {
				cache.EXPECT().Invalidate(mock.Anything, matchesCard).Return(nil).Once()
			},
		},
		{
			name:  "user without card is acknowledged",
			event: &service.DomainEvent{Type: service.EventUserDeleted, SubjectID: uuid.NewString()},
		},
		{
			name: "cache failure is retryable",
			event: &service.DomainEvent{
				Type:       service.EventCardDeleted,
				SubjectID:  cardID.String(),
				Attributes: map[string]string{"slug": "ana-perez"},
			},
			setup: func(cache *mockService.MockCardCache) {
				cache.EXPECT().Invalidate(mock.Anything, matchesCard).Return(errors.New("redis down")).Once()
			},
			wantErr:       true,
			wantRetryable: true,
		},
		{
			name:    "malformed card id is permanent",
			event:   &service.DomainEvent{Type: service.EventCardDeleted, SubjectID: "nope", Attributes: map[string]string{"slug": "x"}},
			wantErr: true,
		},
		{
			name:    "missing slug is permanent",
			event:   &service.DomainEvent{Type: service.EventCardDeleted, SubjectID: cardID.String()},
			wantErr: true,
		},
		{
			name:  "plan change is only recorded",
			event: &service.DomainEvent{Type: service.EventPlanChanged, SubjectID: uuid.NewString()},
		},
		{
			name:  "unknown type is ignored",
			event: &service.DomainEvent{Type: "card.viewed", SubjectID: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache := mockService.NewMockCardCache(t)
			if tt.setup != nil {
				tt.setup(cache)
			}

			srv := NewEventService(EventServiceParams{Cache: cache, Logger: newDiscardLogger()})
			err := srv.Handle(context.Background(), tt.event)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantRetryable, usecase.IsRetryable(err))
		})
	}
}

func TestRetryableError(t *testing.T) {
	t.Parallel()

	base := errors.New("timeout")
	wrapped := errors.Wrap(usecase.NewRetryableError(base), "evict")

	assert.True(t, usecase.IsRetryable(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.False(t, usecase.IsRetryable(base))
	assert.NoError(t, usecase.NewRetryableError(nil))
}
