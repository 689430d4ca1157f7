package usecase

import (
	"context"

	"tarjeta/internal/domain/entity"

	"github.com/google/uuid"
)

// CardUsecase defines the owner-side operations on a user's single card.
type CardUsecase interface {
	GetMyCard(ctx context.Context, userID uuid.UUID) (*entity.Card, error)
	CreateMyCard(ctx context.Context, userID uuid.UUID, input *CardInput) (*entity.Card, error)
	UpdateMyCard(ctx context.Context, userID uuid.UUID, input *CardInput) (*entity.Card, error)
	DeleteMyCard(ctx context.Context, userID uuid.UUID) error
	// GenerateQR points the card's QR image at the service's own QR endpoint.
	GenerateQR(ctx context.Context, userID uuid.UUID) (*entity.Card, error)
}

// LinkUsecase defines the owner-side operations on the links of a user's card.
type LinkUsecase interface {
	ListMyLinks(ctx context.Context, userID uuid.UUID) ([]*entity.Link, error)
	CreateLink(ctx context.Context, userID uuid.UUID, input *LinkInput) (*entity.Link, error)
	UpdateLink(ctx context.Context, userID, linkID uuid.UUID, input *LinkInput) (*entity.Link, error)
	DeleteLink(ctx context.Context, userID, linkID uuid.UUID) error
}

// --- Input DTOs ---

// CardInput is the full set of owner-editable card fields. Updates replace every field.
type CardInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=1000"`
	ThemeColor  string `json:"theme_color" validate:"omitempty,hexcolor"`
	Photo       string `json:"photo"`
	PhotoShape  string `json:"photo_shape" validate:"omitempty,oneof=circle square"`
	TemplateID  string `json:"template_id"`

	Phone     string `json:"phone" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	ShowEmail *bool  `json:"show_email"`
	WhatsApp  string `json:"whatsapp" validate:"max=40"`

	Instagram     string `json:"instagram"`
	ShowInstagram *bool  `json:"show_instagram"`
	Facebook      string `json:"facebook"`
	ShowFacebook  *bool  `json:"show_facebook"`
	TikTok        string `json:"tiktok"`
	ShowTikTok    *bool  `json:"show_tiktok"`
	Maps          string `json:"maps"`
	ShowMaps      *bool  `json:"show_maps"`

	// Document is a data URI; empty removes the attachment.
	Document      string `json:"document"`
	DocumentTitle string `json:"document_title"`
}

// LinkInput defines the data required to create or update a link.
type LinkInput struct {
	Title    string `json:"title" validate:"required,max=120"`
	URL      string `json:"url" validate:"required,max=2048"`
	Position int    `json:"position" validate:"gte=0"`
}
