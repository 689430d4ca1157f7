// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"net/url"

	"tarjeta/internal/domain/contact"
	"tarjeta/internal/domain/entity"
	"tarjeta/internal/domain/viewer"

	"github.com/google/uuid"
)

// CardViewUsecase builds the public, read-only views of a card.
type CardViewUsecase interface {
	// GetCardView fetches the card by slug, then its links, and composes the page blocks.
	GetCardView(ctx context.Context, slug string) (*CardView, error)
	// ExportVCard renders the card as a downloadable contact file.
	ExportVCard(ctx context.Context, slug string) (*VCardFile, error)
	// GetQRCode renders a PNG QR code of the card's public URL.
	GetQRCode(ctx context.Context, slug string) ([]byte, error)
	// OpenContent resolves the viewer surface for one piece of card content.
	// A nil surface with a nil error means the action is a silent no-op.
	OpenContent(ctx context.Context, slug string, input *OpenContentInput) (*viewer.Surface, error)
}

// Stable test hooks for the rendered blocks. An absent block never changes another block's hook.
const (
	HookCard            = "tarjeta-publica"
	HookProfileImage    = "profile-image"
	HookProfileAvatar   = "profile-avatar"
	HookName            = "tarjeta-nombre"
	HookDescription     = "tarjeta-descripcion"
	HookSaveContact     = "save-contact-btn"
	HookPhone           = "phone-btn"
	HookWhatsApp        = "whatsapp-btn"
	HookDocument        = "document-btn"
	HookEmail           = "email-btn"
	HookLinkPrefix      = "enlace-btn-"
	HookSocialPrefix    = "social-"
	HookQRCode          = "qr-code"
	HookNotFound        = "tarjeta-not-found"
	HookGoHome          = "go-home-btn"
	HookViewer          = "content-viewer"
	HookViewerClose     = "viewer-close-btn"
	HookViewerAction    = "viewer-action-btn"
	HookHome            = "home"
	NotFoundRecoveryURL = "/"
)

// CardPath is the HTML page of the card.
func CardPath(slug string) string {
	return "/t/" + url.PathEscape(slug)
}

// ViewerPath is the HTML viewer page for one piece of the card's content.
func ViewerPath(slug string, content ContentName) string {
	return CardPath(slug) + "/view?" + url.Values{"content": {string(content)}}.Encode()
}

// ActionKind identifies a primary action button.
type ActionKind string

// Primary actions, listed in display order.
const (
	ActionSaveContact ActionKind = "save_contact"
	ActionCall        ActionKind = "call"
	ActionWhatsApp    ActionKind = "whatsapp"
	ActionDocument    ActionKind = "document"
	ActionEmail       ActionKind = "email"
)

// ContentName is the viewer content selector accepted by OpenContent.
type ContentName string

const (
	ContentDocument ContentName = "document"
	ContentWebsite  ContentName = "website"
	ContentWhatsApp ContentName = "whatsapp"
	ContentEmail    ContentName = "email"
	ContentPhone    ContentName = "phone"
)

// IsValid checks if the ContentName is a valid value.
func (c ContentName) IsValid() bool {
	switch c {
	case ContentDocument, ContentWebsite, ContentWhatsApp, ContentEmail, ContentPhone:
		return true
	default:
		return false
	}
}

// --- Output DTOs ---

// CardView is the aggregated public page, blocks in render order.
type CardView struct {
	Hook       string        `json:"hook"`
	Slug       string        `json:"slug"`
	PublicURL  string        `json:"public_url"`
	ThemeColor string        `json:"theme_color"`
	Profile    ProfileBlock  `json:"profile"`
	Actions    []ActionBlock `json:"actions"`
	Links      []LinkBlock   `json:"links"`
	Socials    []SocialBlock `json:"socials"`
	QR         *QRBlock      `json:"qr,omitempty"`
}

// ProfileBlock shows the photo, or an initials placeholder when there is none.
type ProfileBlock struct {
	Hook            string            `json:"hook"`
	PhotoURL        string            `json:"photo_url,omitempty"`
	PhotoShape      entity.PhotoShape `json:"photo_shape"`
	Initials        string            `json:"initials,omitempty"`
	Name            string            `json:"name"`
	NameHook        string            `json:"name_hook"`
	Description     string            `json:"description,omitempty"`
	DescriptionHook string            `json:"description_hook,omitempty"`
}

// ActionBlock is one primary action button.
type ActionBlock struct {
	Kind  ActionKind `json:"kind"`
	Hook  string     `json:"hook"`
	Label string     `json:"label"`
	// Action is nil when the action resolves to a silent no-op.
	Action *contact.Action `json:"action,omitempty"`
	// Content names what the action shows in the content viewer.
	Content ContentName `json:"content,omitempty"`
}

// LinkBlock is one ordered link button.
type LinkBlock struct {
	ID     uuid.UUID      `json:"id"`
	Hook   string         `json:"hook"`
	Title  string         `json:"title"`
	Action contact.Action `json:"action"`
}

// SocialBlock is one icon in the social row.
type SocialBlock struct {
	Platform entity.SocialPlatform `json:"platform"`
	Hook     string                `json:"hook"`
	Action   contact.Action        `json:"action"`
}

// QRBlock shows the stored QR image.
type QRBlock struct {
	Hook string `json:"hook"`
	Src  string `json:"src"`
}

// NotFoundView is the terminal state for an unknown slug. Its only way out is RecoveryURL.
type NotFoundView struct {
	Hook         string `json:"hook"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	RecoveryHook string `json:"recovery_hook"`
	RecoveryURL  string `json:"recovery_url"`
}

// NewNotFoundView returns the not-found state.
func NewNotFoundView() *NotFoundView {
	return &NotFoundView{
		Hook:         HookNotFound,
		Title:        "Tarjeta no encontrada",
		Message:      "Esta tarjeta no existe o ha sido eliminada.",
		RecoveryHook: HookGoHome,
		RecoveryURL:  NotFoundRecoveryURL,
	}
}

// ViewerPage is the HTML rendition of an open viewer. Closing it returns to the card.
type ViewerPage struct {
	Hook       string
	CloseHook  string
	ActionHook string
	CloseURL   string
	Surface    viewer.Surface
}

// NewViewerPage wraps a resolved surface for the card at slug.
func NewViewerPage(slug string, surface viewer.Surface) *ViewerPage {
	return &ViewerPage{
		Hook:       HookViewer,
		CloseHook:  HookViewerClose,
		ActionHook: HookViewerAction,
		CloseURL:   CardPath(slug),
		Surface:    surface,
	}
}

// VCardFile is a ready-to-serve contact file.
type VCardFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// --- Input DTOs ---

// OpenContentInput selects the content to open and describes the requesting client.
type OpenContentInput struct {
	Content   ContentName
	LinkID    *uuid.UUID // Required for ContentWebsite.
	UserAgent string
}
