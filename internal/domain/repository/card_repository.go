package repository

import (
	"context"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for card persistence.
var (
	// ErrCardNotFound is returned when no card matches the lookup.
	ErrCardNotFound = errors.New("card not found")
	// ErrDuplicateSlug is returned when a slug is already taken.
	ErrDuplicateSlug = errors.New("card slug already exists")
	// ErrDuplicateCardOwner is returned when the user already owns a card.
	ErrDuplicateCardOwner = errors.New("user already owns a card")
	// ErrLinkNotFound is returned when a link is not found.
	ErrLinkNotFound = errors.New("link not found")
)

// CardReader is the read path used by the public card view.
// It is implemented by the database, the remote API client and the cache decorator.
type CardReader interface {
	// FindBySlug retrieves a card by its public slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Card, error)

	// ListLinks returns the links of a card ordered by position, then insertion.
	ListLinks(ctx context.Context, cardID uuid.UUID) ([]*entity.Link, error)
}

// CardRepository defines the owner-side operations for cards and links.
type CardRepository interface {
	CardReader

	// FindByUserID retrieves the card owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Card, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// Create persists a new card.
	Create(ctx context.Context, card *entity.Card) error

	// Update modifies mutable card fields. The slug is never updated.
	Update(ctx context.Context, card *entity.Card) error

	// DeleteByUserID removes the card of a user together with its links.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// FindLinkByID retrieves a single link.
	FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)

	// CreateLink persists a new link.
	CreateLink(ctx context.Context, link *entity.Link) error

	// UpdateLink modifies title, URL and position of a link.
	UpdateLink(ctx context.Context, link *entity.Link) error

	// DeleteLink removes a link.
	DeleteLink(ctx context.Context, id uuid.UUID) error
}
