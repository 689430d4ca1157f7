package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tarjeta/config"
	deliverycontext "tarjeta/internal/delivery/context"
	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/domain/service"
	"tarjeta/internal/errors"
	"tarjeta/internal/usecase"
	"tarjeta/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const (
	defaultSlug            = "tarjeta"
	defaultMaxDocumentSize = 5 << 20
	slugSuffixLength       = 8
	maxSlugAttempts        = 3
)

type cardService struct {
	cards           repository.CardRepository
	cache           service.CardCache
	events          *eventEmitter
	maxDocumentSize int64
	logger          *slog.Logger
	now             func() time.Time
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	Cards     repository.CardRepository
	Cache     service.CardCache
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCardService creates the owner-side card use case.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		cards:           params.Cards,
		cache:           params.Cache,
		events:          newEventEmitter(params.Publisher, params.Logger),
		maxDocumentSize: maxDocumentSize(params.Config),
		logger:          params.Logger,
		now:             time.Now,
	}
}

func maxDocumentSize(cfg *config.Config) int64 {
	if cfg == nil || cfg.Card == nil {
		return defaultMaxDocumentSize
	}

	size, err := bytes.Parse(cfg.Card.MaxDocumentSize)
	if err != nil || size <= 0 {
		return defaultMaxDocumentSize
	}

	return size
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyCard returns the card owned by the user.
func (srv *cardService) GetMyCard(ctx context.Context, userID uuid.UUID) (*entity.Card, error) {
	card, err := srv.cards.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by user")
	}

	return card, nil
}

// CreateMyCard creates the user's single card with a slug derived from its name.
func (srv *cardService) CreateMyCard(ctx context.Context, userID uuid.UUID, input *usecase.CardInput) (*entity.Card, error) {
	_, err := srv.cards.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrCardAlreadyExists
	case !errors.Is(err, repository.ErrCardNotFound):
		return nil, errors.Wrap(err, "failed to find card by user")
	}

	card := &entity.Card{UserID: userID}
	if err := srv.applyInput(card, input); err != nil {
		return nil, err
	}

	base := util.Slugify(input.Name)
	if base == "" {
		base = defaultSlug
	}

	for attempt := range maxSlugAttempts {
		slug, err := srv.availableSlug(ctx, base, attempt > 0)
		if err != nil {
			return nil, err
		}
		card.Slug = slug

		err = srv.cards.Create(ctx, card)
		switch {
		case err == nil:
			srv.log(ctx).Info("Card created", slog.String("card_id", card.ID.String()), slog.String("slug", card.Slug))

			return card, nil
		case errors.Is(err, repository.ErrDuplicateCardOwner):
			return nil, domainerrors.ErrCardAlreadyExists
		case errors.Is(err, repository.ErrDuplicateSlug):
			// Lost a race for the slug; retry with a suffix.
			continue
		default:
			return nil, errors.Wrap(err, "failed to create card")
		}
	}

	return nil, errors.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

// availableSlug returns base when it is free, otherwise base plus a short uuid suffix.
func (srv *cardService) availableSlug(ctx context.Context, base string, forceSuffix bool) (string, error) {
	if !forceSuffix {
		exists, err := srv.cards.SlugExists(ctx, base)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !exists {
			return base, nil
		}
	}

	return base + "-" + uuid.NewString()[:slugSuffixLength], nil
}

// UpdateMyCard replaces every editable field. The slug never changes.
func (srv *cardService) UpdateMyCard(ctx context.Context, userID uuid.UUID, input *usecase.CardInput) (*entity.Card, error) {
	card, err := srv.GetMyCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.applyInput(card, input); err != nil {
		return nil, err
	}

	if err := srv.cards.Update(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to update card")
	}
	srv.invalidate(ctx, card)

	return card, nil
}

// DeleteMyCard deletes the user's card and its links.
func (srv *cardService) DeleteMyCard(ctx context.Context, userID uuid.UUID) error {
	card, err := srv.GetMyCard(ctx, userID)
	if err != nil {
		return err
	}

	if err := srv.cards.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete card")
	}
	srv.invalidate(ctx, card)

	srv.events.emit(ctx, service.EventCardDeleted, card.ID.String(), map[string]string{
		"user_id": userID.String(),
		"slug":    card.Slug,
	})

	return nil
}

// GenerateQR points the card's QR image at the public QR endpoint.
func (srv *cardService) GenerateQR(ctx context.Context, userID uuid.UUID) (*entity.Card, error) {
	card, err := srv.GetMyCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	card.QRURL = "/api/v1/public/cards/" + card.Slug + "/qr.png"
	card.UpdatedAt = srv.now()

	if err := srv.cards.Update(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to update card QR")
	}
	srv.invalidate(ctx, card)

	return card, nil
}

func (srv *cardService) applyInput(card *entity.Card, input *usecase.CardInput) error {
	doc, err := parseDocument(input.Document, input.DocumentTitle, srv.maxDocumentSize)
	if err != nil {
		return err
	}

	shape := entity.PhotoShape(strings.TrimSpace(input.PhotoShape))
	switch shape {
	case "":
		shape = entity.PhotoShapeCircle
	case entity.PhotoShapeCircle, entity.PhotoShapeSquare:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("photo_shape")
	}

	theme := strings.TrimSpace(input.ThemeColor)
	if theme == "" {
		theme = entity.DefaultThemeColor
	}

	card.Name = strings.TrimSpace(input.Name)
	card.Description = strings.TrimSpace(input.Description)
	card.ThemeColor = theme
	card.Photo = strings.TrimSpace(input.Photo)
	card.PhotoShape = shape
	card.TemplateID = strings.TrimSpace(input.TemplateID)
	card.Phone = strings.TrimSpace(input.Phone)
	card.Email = strings.TrimSpace(input.Email)
	card.ShowEmail = input.ShowEmail
	card.WhatsApp = strings.TrimSpace(input.WhatsApp)
	card.Instagram = strings.TrimSpace(input.Instagram)
	card.ShowInstagram = input.ShowInstagram
	card.Facebook = strings.TrimSpace(input.Facebook)
	card.ShowFacebook = input.ShowFacebook
	card.TikTok = strings.TrimSpace(input.TikTok)
	card.ShowTikTok = input.ShowTikTok
	card.Maps = strings.TrimSpace(input.Maps)
	card.ShowMaps = input.ShowMaps
	card.Document = doc
	card.UpdatedAt = srv.now()

	return nil
}

func (srv *cardService) invalidate(ctx context.Context, card *entity.Card) {
	if err := srv.cache.Invalidate(ctx, card); err != nil {
		srv.log(ctx).Warn("Failed to invalidate card cache", slog.String("slug", card.Slug), slog.Any("error", err))
	}
}
