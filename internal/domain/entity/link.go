package entity

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Link is a user-defined external URL shown on a card.
// Links are displayed by Position ascending, ties broken by CreatedAt.
type Link struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	Title     string
	URL       string // Free text, possibly missing the protocol.
	Position  int
	CreatedAt time.Time
}

// SortLinks orders links for display: by Position, then by CreatedAt.
// The sort is stable so equal keys keep their incoming order.
func SortLinks(links []*Link) {
	slices.SortStableFunc(links, func(a, b *Link) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
