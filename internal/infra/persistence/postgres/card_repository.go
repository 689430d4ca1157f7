package postgres

import (
	"context"

	"tarjeta/internal/domain/entity"
	domainerrors "tarjeta/internal/domain/errors"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const cardUserIndex = "user_id"

// cardRepository implements repository.CardRepository with GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// FindBySlug retrieves a card by its public slug.
func (repo *cardRepository) FindBySlug(ctx context.Context, slug string) (*entity.Card, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

// FindByUserID retrieves the card owned by a user.
func (repo *cardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Card, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *cardRepository) findOne(ctx context.Context, query string, arg any) (*entity.Card, error) {
	var cardM model.CardModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	return toCardDomain(&cardM), nil
}

// SlugExists reports whether a slug is already taken.
func (repo *cardRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.CardModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check slug")
	}

	return count > 0, nil
}

// Create persists a new card.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Omit("Links").Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, cardUserIndex) {
				return repository.ErrDuplicateCardOwner
			}

			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// Update modifies mutable card fields. Slug and owner are never written.
func (repo *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)

	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", card.ID).
		Select("*").
		Omit("id", "user_id", "slug", "created_at", "Links").
		Updates(cardM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// DeleteByUserID removes the card of a user together with its links.
func (repo *cardRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	cardIDs := repo.db.Model(&model.CardModel{}).Select("id").Where("user_id = ?", userID)

	if err := repo.db.WithContext(ctx).Where("card_id IN (?)", cardIDs).Delete(&model.LinkModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete card links")
	}

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CardModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete card")
	}

	return nil
}

// ListLinks returns the links of a card ordered by position, then insertion.
func (repo *cardRepository) ListLinks(ctx context.Context, cardID uuid.UUID) ([]*entity.Link, error) {
	var linkMs []model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("position ASC").
		Order("created_at ASC").
		Find(&linkMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list links")
	}

	links := make([]*entity.Link, 0, len(linkMs))
	for i := range linkMs {
		links = append(links, toLinkDomain(&linkMs[i]))
	}

	return links, nil
}

// FindLinkByID retrieves a single link.
func (repo *cardRepository) FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link")
	}

	return toLinkDomain(&linkM), nil
}

// CreateLink persists a new link.
func (repo *cardRepository) CreateLink(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCardNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// UpdateLink modifies title, URL and position of a link.
func (repo *cardRepository) UpdateLink(ctx context.Context, link *entity.Link) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ?", link.ID).
		Updates(map[string]any{
			"title":    link.Title,
			"url":      link.URL,
			"position": link.Position,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// DeleteLink removes a link.
func (repo *cardRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LinkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	card := &entity.Card{
		ID:            data.ID,
		UserID:        data.UserID,
		Slug:          data.Slug,
		Name:          data.Name,
		Description:   data.Description,
		ThemeColor:    data.ThemeColor,
		Photo:         data.Photo,
		PhotoShape:    entity.PhotoShape(data.PhotoShape),
		TemplateID:    data.TemplateID,
		Phone:         data.Phone,
		Email:         data.Email,
		ShowEmail:     data.ShowEmail,
		WhatsApp:      data.WhatsApp,
		Instagram:     data.Instagram,
		ShowInstagram: data.ShowInstagram,
		Facebook:      data.Facebook,
		ShowFacebook:  data.ShowFacebook,
		TikTok:        data.TikTok,
		ShowTikTok:    data.ShowTikTok,
		Maps:          data.Maps,
		ShowMaps:      data.ShowMaps,
		QRURL:         data.QRURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.DocumentData != "" {
		card.Document = &entity.Document{
			Type:    entity.DocumentType(data.DocumentType),
			DataURI: data.DocumentData,
			Title:   data.DocumentTitle,
		}
	}

	return card
}

func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	cardM := &model.CardModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Slug:          data.Slug,
		Name:          data.Name,
		Description:   data.Description,
		ThemeColor:    data.ThemeColor,
		Photo:         data.Photo,
		PhotoShape:    string(data.PhotoShape),
		TemplateID:    data.TemplateID,
		Phone:         data.Phone,
		Email:         data.Email,
		ShowEmail:     data.ShowEmail,
		WhatsApp:      data.WhatsApp,
		Instagram:     data.Instagram,
		ShowInstagram: data.ShowInstagram,
		Facebook:      data.Facebook,
		ShowFacebook:  data.ShowFacebook,
		TikTok:        data.TikTok,
		ShowTikTok:    data.ShowTikTok,
		Maps:          data.Maps,
		ShowMaps:      data.ShowMaps,
		QRURL:         data.QRURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Document != nil {
		cardM.DocumentType = string(data.Document.Type)
		cardM.DocumentData = data.Document.DataURI
		cardM.DocumentTitle = data.Document.Title
	}

	return cardM
}

func toLinkDomain(data *model.LinkModel) *entity.Link {
	return &entity.Link{
		ID:        data.ID,
		CardID:    data.CardID,
		Title:     data.Title,
		URL:       data.URL,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
	}
}

func fromLinkDomain(data *entity.Link) *model.LinkModel {
	return &model.LinkModel{
		ID:        data.ID,
		CardID:    data.CardID,
		Title:     data.Title,
		URL:       data.URL,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
	}
}
