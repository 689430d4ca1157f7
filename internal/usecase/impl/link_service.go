package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type linkService struct {
	cards  repository.CardRepository
	cache  service.CardCache
	logger *slog.Logger
	now    func() time.Time
}

// LinkServiceParams holds dependencies for LinkService, injected by Fx.
type LinkServiceParams struct {
	fx.In

	Cards  repository.CardRepository
	Cache  service.CardCache
	Logger *slog.Logger
}

// NewLinkService creates the owner-side link use case.
func NewLinkService(params LinkServiceParams) usecase.LinkUsecase {
	return &linkService{
		cards:  params.Cards,
		cache:  params.Cache,
		logger: params.Logger,
		now:    time.Now,
	}
}

// ListMyLinks returns the links of the user's card in display order.
func (srv *linkService) ListMyLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error) {
	card, err := srv.ownCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	links, err := srv.cards.ListLinks(ctx, card.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}
	entity.SortLinks(links)

	return links, nil
}

// CreateLink adds a link to the user's card.
func (srv *linkService) CreateLink(ctx context.Context, userID uuid.UUID, input *usecase.LinkInput) (*entity.Link, error) {
	card, err := srv.ownCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	link := &entity.Link{
		CardID:    card.ID,
		Title:     strings.TrimSpace(input.Title),
		URL:       strings.TrimSpace(input.URL),
		Position:  input.Position,
		CreatedAt: srv.now(),
	}

	if err := srv.cards.CreateLink(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to create link")
	}
	srv.invalidate(ctx, card)

	return link, nil
}

// UpdateLink replaces a link that belongs to the user's card.
func (srv *linkService) UpdateLink(ctx context.Context, userID, linkID uuid.UUID, input *usecase.LinkInput) (*entity.Link, error) {
	card, link, err := srv.ownLink(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}

	link.Title = strings.TrimSpace(input.Title)
	link.URL = strings.TrimSpace(input.URL)
	link.Position = input.Position

	if err := srv.cards.UpdateLink(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to update link")
	}
	srv.invalidate(ctx, card)

	return link, nil
}

// DeleteLink removes a link that belongs to the user's card.
func (srv *linkService) DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error {
	card, link, err := srv.ownLink(ctx, userID, linkID)
	if err != nil {
		return err
	}

	if err := srv.cards.DeleteLink(ctx, link.ID); err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return domainerrors.ErrLinkNotFound
		}

		return errors.Wrap(err, "failed to delete link")
	}
	srv.invalidate(ctx, card)

	return nil
}

func (srv *linkService) ownCard(ctx context.Context, userID uuid.UUID) (*entity.Card, error) {
	card, err := srv.cards.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by user")
	}

	return card, nil
}

// ownLink loads a link and checks that it belongs to the user's card.
func (srv *linkService) ownLink(ctx context.Context, userID, linkID uuid.UUID) (*entity.Card, *entity.Link, error) {
	card, err := srv.ownCard(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	link, err := srv.cards.FindLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, nil, domainerrors.ErrLinkNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find link")
	}

	if link.CardID != card.ID {
		srv.log(ctx).Warn("Link ownership mismatch",
			slog.String("user_id", userID.String()),
			slog.String("link_id", linkID.String()),
		)

		return nil, nil, domainerrors.ErrLinkForbidden
	}

	return card, link, nil
}

func (srv *linkService) invalidate(ctx context.Context, card *entity.Card) {
	if err := srv.cache.Invalidate(ctx, card); err != nil {
		srv.log(ctx).Warn("Failed to invalidate card cache", slog.String("slug", card.Slug), slog.Any("error", err))
	}
}

func (srv *linkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
