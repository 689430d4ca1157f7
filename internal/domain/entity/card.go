package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultThemeColor is used when a card has no theme color.
const DefaultThemeColor = "#6366f1"

// PhotoShape controls how the profile photo is cropped.
type PhotoShape string

const (
	PhotoShapeCircle PhotoShape = "circle"
	PhotoShapeSquare PhotoShape = "square"
)

// DocumentType tags the attached document.
type DocumentType string

const (
	DocumentTypePDF   DocumentType = "pdf"
	DocumentTypeImage DocumentType = "image"
)

// IsValid checks if the DocumentType is a valid value.
func (d DocumentType) IsValid() bool {
	return d == DocumentTypePDF || d == DocumentTypeImage
}

// Social platforms rendered in the social icon row, in display order.
type SocialPlatform string

const (
	SocialInstagram SocialPlatform = "instagram"
	SocialFacebook  SocialPlatform = "facebook"
	SocialTikTok    SocialPlatform = "tiktok"
	SocialMaps      SocialPlatform = "maps"
)

// SocialPlatforms lists the platforms in their fixed display order.
var SocialPlatforms = []SocialPlatform{SocialInstagram, SocialFacebook, SocialTikTok, SocialMaps}

// Document is a file attached to a card, stored inline as a data URI.
type Document struct {
	Type    DocumentType
	DataURI string
	Title   string
}

// Card is a user's public profile page.
type Card struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Slug        string // Unique and immutable after creation.
	Name        string
	Description string
	ThemeColor  string
	Photo       string // URL or data URI.
	PhotoShape  PhotoShape
	TemplateID  string

	Phone     string
	Email     string
	ShowEmail *bool // nil means visible.
	WhatsApp  string

	Instagram     string
	ShowInstagram *bool
	Facebook      string
	ShowFacebook  *bool
	TikTok        string
	ShowTikTok    *bool
	Maps          string
	ShowMaps      *bool

	Document *Document
	QRURL    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Visible treats an absent flag as visible; only an explicit false hides.
func Visible(flag *bool) bool {
	return flag == nil || *flag
}

// EmailVisible reports whether the email action should be offered.
func (c *Card) EmailVisible() bool {
	return strings.TrimSpace(c.Email) != "" && Visible(c.ShowEmail)
}

// Social returns the stored value for a platform and whether it should be shown.
func (c *Card) Social(p SocialPlatform) (string, bool) {
	var value string
	var flag *bool

	switch p {
	case SocialInstagram:
		value, flag = c.Instagram, c.ShowInstagram
	case SocialFacebook:
		value, flag = c.Facebook, c.ShowFacebook
	case SocialTikTok:
		value, flag = c.TikTok, c.ShowTikTok
	case SocialMaps:
		value, flag = c.Maps, c.ShowMaps
	default:
		return "", false
	}

	value = strings.TrimSpace(value)

	return value, value != "" && Visible(flag)
}

// Theme returns the theme color, falling back to DefaultThemeColor.
func (c *Card) Theme() string {
	if strings.TrimSpace(c.ThemeColor) == "" {
		return DefaultThemeColor
	}

	return c.ThemeColor
}

// Initials returns the avatar placeholder: the first rune of the name in upper case, or "?".
func (c *Card) Initials() string {
	name := strings.TrimSpace(c.Name)
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}

	return "?"
}
