package impl

import (
	"context"
	"testing"
	"time"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	mockRepo "tarjeta/internal/mocks/repository"
	mockService "tarjeta/internal/mocks/service"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLinkService(t *testing.T) (*linkService, *mockRepo.MockCardRepository, *mockService.MockCardCache) {
	t.Helper()

	cards := mockRepo.NewMockCardRepository(t)
	cache := mockService.NewMockCardCache(t)

	svc := NewLinkService(LinkServiceParams{
		Cards:  cards,
		Cache:  cache,
		Logger: newDiscardLogger(),
	}).(*linkService)
	svc.now = fixedClock

	return svc, cards, cache
}

func TestLinkService_ListMyLinks_Sorted(t *testing.T) {
	t.Parallel()

	svc, cards, _ := setupLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID}

	b := &entity.Link{ID: uuid.New(), Position: 1, CreatedAt: fixedNow.Add(time.Minute)}
	a := &entity.Link{ID: uuid.New(), Position: 1, CreatedAt: fixedNow}
	c := &entity.Link{ID: uuid.New(), Position: 0, CreatedAt: fixedNow.Add(time.Hour)}

	cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	cards.EXPECT().ListLinks(ctx, card.ID).Return([]*entity.Link{b, a, c}, nil)

	links, err := svc.ListMyLinks(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Link{c, a, b}, links)
}

func TestLinkService_CreateLink(t *testing.T) {
	t.Parallel()

	svc, cards, cache := setupLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID, Slug: "ana"}

	cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	cards.EXPECT().CreateLink(ctx, mock.MatchedBy(func(l *entity.Link) bool {
		return l.CardID == card.ID && l.Title == "Tienda" && l.URL == "shop.example.com" && l.Position == 3
	})).Return(nil)
	cache.EXPECT().Invalidate(ctx, card).Return(nil)

	link, err := svc.CreateLink(ctx, userID, &usecase.LinkInput{Title: " Tienda ", URL: " shop.example.com ", Position: 3})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, link.CreatedAt)
}

func TestLinkService_CreateLink_NoCard(t *testing.T) {
	t.Parallel()

	svc, cards, _ := setupLinkService(t)
	ctx := context.Background()
	userID := uuid.New()

	cards.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCardNotFound)

	_, err := svc.CreateLink(ctx, userID, &usecase.LinkInput{Title: "x", URL: "y"})
	assert.Equal(t, domainerrors.ErrCardNotFound, err)
}

func TestLinkService_Ownership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		found   func(cardID uuid.UUID) (*entity.Link, error)
		wantErr error
	}{
		{
			name: "link of another card is forbidden",
			found: func(uuid.UUID) (*entity.Link, error) {
				return &entity.Link{ID: uuid.New(), CardID: uuid.New()}, nil
			},
			wantErr: domainerrors.ErrLinkForbidden,
		},
		{
			name: "missing link",
			found: func(uuid.UUID) (*entity.Link, error) {
				return nil, repository.ErrLinkNotFound
			},
			wantErr: domainerrors.ErrLinkNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/update", func(t *testing.T) {
			t.Parallel()

			svc, cards, _ := setupLinkService(t)
			ctx := context.Background()
			userID, linkID := uuid.New(), uuid.New()
			card := &entity.Card{ID: uuid.New(), UserID: userID}

			cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
			cards.EXPECT().FindLinkByID(ctx, linkID).Return(tt.found(card.ID))

			_, err := svc.UpdateLink(ctx, userID, linkID, &usecase.LinkInput{Title: "t", URL: "u"})
			assert.Equal(t, tt.wantErr, err)
		})

		t.Run(tt.name+"/delete", func(t *testing.T) {
			t.Parallel()

			svc, cards, _ := setupLinkService(t)
			ctx := context.Background()
			userID, linkID := uuid.New(), uuid.New()
			card := &entity.Card{ID: uuid.New(), UserID: userID}

			cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
			cards.EXPECT().FindLinkByID(ctx, linkID).Return(tt.found(card.ID))

			err := svc.DeleteLink(ctx, userID, linkID)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestLinkService_UpdateLink(t *testing.T) {
	t.Parallel()

	svc, cards, cache := setupLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID, Slug: "ana"}
	link := &entity.Link{ID: uuid.New(), CardID: card.ID, Title: "Old", URL: "old.example.com"}

	cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	cards.EXPECT().FindLinkByID(ctx, link.ID).Return(link, nil)
	cards.EXPECT().UpdateLink(ctx, link).Return(nil)
	cache.EXPECT().Invalidate(ctx, card).Return(nil)

	got, err := svc.UpdateLink(ctx, userID, link.ID, &usecase.LinkInput{Title: "New", URL: "new.example.com", Position: 5})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "new.example.com", got.URL)
	assert.Equal(t, 5, got.Position)
}

func TestLinkService_DeleteLink(t *testing.T) {
	t.Parallel()

	svc, cards, cache := setupLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID, Slug: "ana"}
	link := &entity.Link{ID: uuid.New(), CardID: card.ID}

	cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	cards.EXPECT().FindLinkByID(ctx, link.ID).Return(link, nil)
	cards.EXPECT().DeleteLink(ctx, link.ID).Return(nil)
	cache.EXPECT().Invalidate(ctx, card).Return(nil)

	require.NoError(t, svc.DeleteLink(ctx, userID, link.ID))
}
