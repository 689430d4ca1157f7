package handler

import (
	"time"

	"tarjeta/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentResponse is the attached document of a card.
type DocumentResponse struct {
	Type    entity.DocumentType `json:"type"`
	Title   string              `json:"title,omitempty"`
	DataURI string              `json:"data_uri"`
}

// CardResponse is the owner's view of their card.
type CardResponse struct {
	ID          uuid.UUID         `json:"id"`
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ThemeColor  string            `json:"theme_color"`
	Photo       string            `json:"photo,omitempty"`
	PhotoShape  entity.PhotoShape `json:"photo_shape"`
	TemplateID  string            `json:"template_id,omitempty"`

	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	ShowEmail *bool  `json:"show_email,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`

	Instagram     string `json:"instagram,omitempty"`
	ShowInstagram *bool  `json:"show_instagram,omitempty"`
	Facebook      string `json:"facebook,omitempty"`
	ShowFacebook  *bool  `json:"show_facebook,omitempty"`
	TikTok        string `json:"tiktok,omitempty"`
	ShowTikTok    *bool  `json:"show_tiktok,omitempty"`
	Maps          string `json:"maps,omitempty"`
	ShowMaps      *bool  `json:"show_maps,omitempty"`

	Document *DocumentResponse `json:"document,omitempty"`
	QRURL    string            `json:"qr_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCardResponse(card *entity.Card) *CardResponse {
	resp := &CardResponse{
		ID:            card.ID,
		Slug:          card.Slug,
		Name:          card.Name,
		Description:   card.Description,
		ThemeColor:    card.Theme(),
		Photo:         card.Photo,
		PhotoShape:    card.PhotoShape,
		TemplateID:    card.TemplateID,
		Phone:         card.Phone,
		Email:         card.Email,
		ShowEmail:     card.ShowEmail,
		WhatsApp:      card.WhatsApp,
		Instagram:     card.Instagram,
		ShowInstagram: card.ShowInstagram,
		Facebook:      card.Facebook,
		ShowFacebook:  card.ShowFacebook,
		TikTok:        card.TikTok,
		ShowTikTok:    card.ShowTikTok,
		Maps:          card.Maps,
		ShowMaps:      card.ShowMaps,
		QRURL:         card.QRURL,
		CreatedAt:     card.CreatedAt,
		UpdatedAt:     card.UpdatedAt,
	}
	if card.Document != nil {
		resp.Document = &DocumentResponse{
			Type:    card.Document.Type,
			Title:   card.Document.Title,
			DataURI: card.Document.DataURI,
		}
	}

	return resp
}

// LinkResponse is one link of the owner's card.
type LinkResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func newLinkResponse(link *entity.Link) *LinkResponse {
	return &LinkResponse{
		ID:        link.ID,
		Title:     link.Title,
		URL:       link.URL,
		Position:  link.Position,
		CreatedAt: link.CreatedAt,
	}
}

func newLinkResponses(links []*entity.Link) []*LinkResponse {
	out := make([]*LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, newLinkResponse(link))
	}

	return out
}

// UserResponse is an account as administrators see it. The password hash is never exposed.
type UserResponse struct {
	ID            uuid.UUID   `json:"id"`
	Email         string      `json:"email"`
	Name          string      `json:"name"`
	Role          entity.Role `json:"role"`
	Plan          entity.Plan `json:"plan"`
	EffectivePlan entity.Plan `json:"effective_plan"`
	TrialEndsAt   *time.Time  `json:"trial_ends_at,omitempty"`
	PlanExpiresAt *time.Time  `json:"plan_expires_at,omitempty"`
	IsActive      bool        `json:"is_active"`
	LicenseKey    string      `json:"license_key,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func newUserResponse(user *entity.User, now time.Time) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role,
		Plan:          user.Plan,
		EffectivePlan: user.EffectivePlanAt(now),
		TrialEndsAt:   user.TrialEndsAt,
		PlanExpiresAt: user.PlanExpiresAt,
		IsActive:      user.IsActive,
		LicenseKey:    user.LicenseKey,
		CreatedAt:     user.CreatedAt,
	}
}

// MessageResponse is one admin broadcast.
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResponses(messages []*entity.AdminMessage) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, &MessageResponse{ID: m.ID, Title: m.Title, Body: m.Body, CreatedAt: m.CreatedAt})
	}

	return out
}
