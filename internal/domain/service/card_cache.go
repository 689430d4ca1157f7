package service

import (
	"context"

	"tarjeta/internal/domain/entity"
)

// CardCache evicts cached public views after owner-side writes.
type CardCache interface {
	// Invalidate drops every cached entry derived from the card.
	Invalidate(ctx context.Context, card *entity.Card) error
}
