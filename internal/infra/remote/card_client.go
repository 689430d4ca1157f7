// Package remote reads public cards from an external REST API.
package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/repository"
	"tarjeta/internal/errors"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// cardClient implements repository.CardReader over HTTP.
type cardClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCardClient creates a CardReader for the API at baseURL.
func NewCardClient(baseURL string, timeout time.Duration, logger *slog.Logger) repository.CardReader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &cardClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// cardDTO is the card document served by the API.
type cardDTO struct {
	ID            string          `json:"id"`
	UserID        string          `json:"usuario_id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"nombre"`
	Description   string          `json:"descripcion"`
	ThemeColor    string          `json:"color_tema"`
	Photo         string          `json:"foto_url"`
	PhotoShape    string          `json:"foto_forma"`
	TemplateID    json.RawMessage `json:"plantilla_id"`
	Phone         string          `json:"telefono"`
	Email         string          `json:"email"`
	ShowEmail     *bool           `json:"mostrar_email"`
	WhatsApp      string          `json:"whatsapp"`
	Instagram     string          `json:"instagram"`
	ShowInstagram *bool           `json:"mostrar_instagram"`
	Facebook      string          `json:"facebook"`
	ShowFacebook  *bool           `json:"mostrar_facebook"`
	TikTok        string          `json:"tiktok"`
	ShowTikTok    *bool           `json:"mostrar_tiktok"`
	Maps          string          `json:"google_maps"`
	ShowMaps      *bool           `json:"mostrar_google_maps"`
	DocumentData  string          `json:"archivo_negocio"`
	DocumentType  string          `json:"archivo_negocio_tipo"`
	DocumentTitle string          `json:"archivo_negocio_nombre"`
	QRURL         string          `json:"qr_url"`
	CreatedAt     string          `json:"created_at"`
}

// linkDTO is the link document served by the API.
type linkDTO struct {
	ID        string `json:"id"`
	CardID    string `json:"tarjeta_id"`
	Title     string `json:"titulo"`
	URL       string `json:"url"`
	Position  int    `json:"orden"`
	CreatedAt string `json:"created_at"`
}

// FindBySlug fetches /api/tarjetas/slug/{slug}. A 404 maps to repository.ErrCardNotFound.
func (c *cardClient) FindBySlug(ctx context.Context, slug string) (*entity.Card, error) {
	var dto cardDTO
	if err := c.getJSON(ctx, "/api/tarjetas/slug/"+url.PathEscape(slug), &dto); err != nil {
		if errors.Is(err, errRemoteNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, err
	}

	return dto.toEntity()
}

// ListLinks fetches /api/enlaces/{cardID}. The API already orders by "orden";
// the list is re-sorted here so ties keep insertion order. A card with no
// links answers an empty array, so a 404 is a failed fetch like any other.
func (c *cardClient) ListLinks(ctx context.Context, cardID uuid.UUID) ([]*entity.Link, error) {
	var dtos []linkDTO
	if err := c.getJSON(ctx, "/api/enlaces/"+cardID.String(), &dtos); err != nil {
		return nil, errors.Wrap(err, "list remote links")
	}

	links := make([]*entity.Link, 0, len(dtos))
	for _, dto := range dtos {
		link, err := dto.toEntity(cardID)
		if err != nil {
			c.logger.Warn("Skipping malformed remote link", slog.String("link_id", dto.ID), slog.Any("error", err))

			continue
		}
		links = append(links, link)
	}
	entity.SortLinks(links)

	return links, nil
}

var errRemoteNotFound = errors.New("remote resource not found")

func (c *cardClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "remote card api request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errRemoteNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return errors.Errorf("remote card api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode remote card api response")
	}

	return nil
}

func (dto *cardDTO) toEntity() (*entity.Card, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, errors.Wrap(err, "remote card id")
	}
	userID, _ := uuid.Parse(dto.UserID)

	card := &entity.Card{
		ID:            id,
		UserID:        userID,
		Slug:          dto.Slug,
		Name:          dto.Name,
		Description:   dto.Description,
		ThemeColor:    dto.ThemeColor,
		Photo:         dto.Photo,
		PhotoShape:    entity.PhotoShape(dto.PhotoShape),
		Phone:         dto.Phone,
		Email:         dto.Email,
		ShowEmail:     dto.ShowEmail,
		WhatsApp:      dto.WhatsApp,
		Instagram:     dto.Instagram,
		ShowInstagram: dto.ShowInstagram,
		Facebook:      dto.Facebook,
		ShowFacebook:  dto.ShowFacebook,
		TikTok:        dto.TikTok,
		ShowTikTok:    dto.ShowTikTok,
		Maps:          dto.Maps,
		ShowMaps:      dto.ShowMaps,
		QRURL:         dto.QRURL,
		CreatedAt:     parseTime(dto.CreatedAt),
	}
	if len(dto.TemplateID) > 0 && string(dto.TemplateID) != "null" {
		card.TemplateID = strings.Trim(string(dto.TemplateID), `"`)
	}

	if dto.DocumentData != "" {
		docType := entity.DocumentTypeImage
		if strings.EqualFold(dto.DocumentType, string(entity.DocumentTypePDF)) {
			docType = entity.DocumentTypePDF
		}
		card.Document = &entity.Document{
			Type:    docType,
			DataURI: dto.DocumentData,
			Title:   dto.DocumentTitle,
		}
	}

	return card, nil
}

func (dto *linkDTO) toEntity(cardID uuid.UUID) (*entity.Link, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, errors.Wrap(err, "remote link id")
	}

	return &entity.Link{
		ID:        id,
		CardID:    cardID,
		Title:     dto.Title,
		URL:       dto.URL,
		Position:  dto.Position,
		CreatedAt: parseTime(dto.CreatedAt),
	}, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
