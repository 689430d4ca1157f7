package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	mockRepo "tarjeta/internal/mocks/repository"
	mockService "tarjeta/internal/mocks/service"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cardServiceFixtures struct {
	service   *cardService
	cards     *mockRepo.MockCardRepository
	cache     *mockService.MockCardCache
	publisher *mockService.MockEventPublisher
}

func setupCardService(t *testing.T) cardServiceFixtures {
	t.Helper()

	cards := mockRepo.NewMockCardRepository(t)
	cache := mockService.NewMockCardCache(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCardService(CardServiceParams{
		Cards:     cards,
		Cache:     cache,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*cardService)
	svc.now = fixedClock

	return cardServiceFixtures{service: svc, cards: cards, cache: cache, publisher: publisher}
}

func TestCardService_CreateMyCard_Slug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cardName   string
		taken      bool
		wantPrefix string
		wantExact  bool
	}{
		{name: "free slug from name", cardName: "Juan Pérez", wantPrefix: "juan-perez", wantExact: true},
		{name: "collision gets uuid suffix", cardName: "Juan Pérez", taken: true, wantPrefix: "juan-perez-"},
		{name: "symbols only falls back", cardName: "★★★", wantPrefix: "tarjeta", wantExact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := setupCardService(t)
			ctx := context.Background()
			userID := uuid.New()

			f.cards.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCardNotFound)
			f.cards.EXPECT().SlugExists(ctx, mock.AnythingOfType("string")).Return(tt.taken, nil)
			f.cards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Card")).
				RunAndReturn(func(_ context.Context, card *entity.Card) error {
					card.ID = uuid.New()
					return nil
				})

			card, err := f.service.CreateMyCard(ctx, userID, &usecase.CardInput{Name: tt.cardName})
			require.NoError(t, err)

			if tt.wantExact {
				assert.Equal(t, tt.wantPrefix, card.Slug)
			} else {
				assert.True(t, strings.HasPrefix(card.Slug, tt.wantPrefix), card.Slug)
				assert.Len(t, card.Slug, len(tt.wantPrefix)+slugSuffixLength)
			}
			assert.Equal(t, userID, card.UserID)
			assert.Equal(t, entity.DefaultThemeColor, card.ThemeColor)
			assert.Equal(t, entity.PhotoShapeCircle, card.PhotoShape)
			assert.Nil(t, card.Document)
		})
	}
}

func TestCardService_CreateMyCard_RetriesOnSlugRace(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCardNotFound)
	f.cards.EXPECT().SlugExists(ctx, "ana").Return(false, nil).Once()
	f.cards.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Card) bool { return c.Slug == "ana" })).
		Return(repository.ErrDuplicateSlug).Once()
	f.cards.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Card) bool { return strings.HasPrefix(c.Slug, "ana-") })).
		Return(nil).Once()

	card, err := f.service.CreateMyCard(ctx, userID, &usecase.CardInput{Name: "Ana"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(card.Slug, "ana-"))
}

func TestCardService_CreateMyCard_AlreadyExists(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(&entity.Card{ID: uuid.New()}, nil)

	card, err := f.service.CreateMyCard(ctx, userID, &usecase.CardInput{Name: "Ana"})
	assert.Nil(t, card)
	assert.Equal(t, domainerrors.ErrCardAlreadyExists, err)
}

func TestCardService_CreateMyCard_Document(t *testing.T) {
	t.Parallel()

	small := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 tiny"))
	huge := base64.StdEncoding.EncodeToString(make([]byte, 5<<20+1))

	tests := []struct {
		name     string
		document string
		wantType entity.DocumentType
		wantCode string
	}{
		{name: "pdf accepted", document: "data:application/pdf;base64," + small, wantType: entity.DocumentTypePDF},
		{name: "jpeg accepted", document: "data:image/jpeg;base64," + small, wantType: entity.DocumentTypeImage},
		{name: "png rejected", document: "data:image/png;base64," + small, wantCode: "INVALID_DOCUMENT"},
		{name: "not a data uri", document: "https://example.com/cv.pdf", wantCode: "INVALID_DOCUMENT"},
		{name: "broken base64", document: "data:application/pdf;base64,@@@", wantCode: "INVALID_DOCUMENT"},
		{name: "over five megabytes", document: "data:application/pdf;base64," + huge, wantCode: "DOCUMENT_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := setupCardService(t)
			ctx := context.Background()
			userID := uuid.New()

			f.cards.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCardNotFound)
			if tt.wantCode == "" {
				f.cards.EXPECT().SlugExists(ctx, "ana").Return(false, nil)
				f.cards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Card")).Return(nil)
			}

			card, err := f.service.CreateMyCard(ctx, userID, &usecase.CardInput{
				Name:          "Ana",
				Document:      tt.document,
				DocumentTitle: " CV ",
			})

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errorCode(err))

				return
			}
			require.NoError(t, err)
			require.NotNil(t, card.Document)
			assert.Equal(t, tt.wantType, card.Document.Type)
			assert.Equal(t, "CV", card.Document.Title)
		})
	}
}

func TestCardService_UpdateMyCard_ReplacesFieldsAndKeepsSlug(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Card{
		ID:         uuid.New(),
		UserID:     userID,
		Slug:       "ana",
		Name:       "Ana",
		Phone:      "555",
		Instagram:  "@ana",
		ThemeColor: "#000000",
	}

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	f.cards.EXPECT().Update(ctx, existing).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, existing).Return(nil)

	card, err := f.service.UpdateMyCard(ctx, userID, &usecase.CardInput{
		Name:       "Ana María",
		PhotoShape: "square",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", card.Slug)
	assert.Equal(t, "Ana María", card.Name)
	assert.Empty(t, card.Phone)
	assert.Empty(t, card.Instagram)
	assert.Equal(t, entity.DefaultThemeColor, card.ThemeColor)
	assert.Equal(t, entity.PhotoShapeSquare, card.PhotoShape)
	assert.Equal(t, fixedNow, card.UpdatedAt)
}

func TestCardService_UpdateMyCard_NotFound(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCardNotFound)

	_, err := f.service.UpdateMyCard(ctx, userID, &usecase.CardInput{Name: "x"})
	assert.Equal(t, domainerrors.ErrCardNotFound, err)
}

func TestCardService_DeleteMyCard(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID, Slug: "ana"}

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	f.cards.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, card).Return(assert.AnError)
	f.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventCardDeleted && e.SubjectID == card.ID.String() && e.Attributes["slug"] == "ana"
		})).
		Return(nil)

	require.NoError(t, f.service.DeleteMyCard(ctx, userID))
}

func TestCardService_GenerateQR(t *testing.T) {
	t.Parallel()

	f := setupCardService(t)
	ctx := context.Background()
	userID := uuid.New()
	card := &entity.Card{ID: uuid.New(), UserID: userID, Slug: "ana"}

	f.cards.EXPECT().FindByUserID(ctx, userID).Return(card, nil)
	f.cards.EXPECT().Update(ctx, card).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, card).Return(nil)

	got, err := f.service.GenerateQR(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/public/cards/ana/qr.png", got.QRURL)
}

func TestMaxDocumentSize(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	assert.Equal(t, int64(5<<20), maxDocumentSize(cfg))

	cfg.Card.MaxDocumentSize = "1KiB"
	assert.Equal(t, int64(1024), maxDocumentSize(cfg))

	cfg.Card.MaxDocumentSize = "lots"
	assert.Equal(t, int64(defaultMaxDocumentSize), maxDocumentSize(cfg))

	assert.Equal(t, int64(defaultMaxDocumentSize), maxDocumentSize(nil))
}
