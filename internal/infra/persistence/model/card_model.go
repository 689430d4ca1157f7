package model

import (
	"time"

	"github.com/google/uuid"
)

// CardModel mirrors the 'cards' table. One card per user, slug is unique.
type CardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	ThemeColor  string    `gorm:"type:varchar(16)"`
	Photo       string    `gorm:"type:text"`
	PhotoShape  string    `gorm:"type:varchar(16)"`
	TemplateID  string    `gorm:"type:varchar(64)"`

	Phone     string `gorm:"type:varchar(32)"`
	Email     string `gorm:"type:varchar(255)"`
	ShowEmail *bool
	WhatsApp  string `gorm:"column:whatsapp;type:varchar(32)"`

	Instagram     string `gorm:"type:varchar(255)"`
	ShowInstagram *bool
	Facebook      string `gorm:"type:varchar(255)"`
	ShowFacebook  *bool
	TikTok        string `gorm:"column:tiktok;type:varchar(255)"`
	ShowTikTok    *bool  `gorm:"column:show_tiktok"`
	Maps          string `gorm:"type:text"`
	ShowMaps      *bool

	DocumentType  string `gorm:"type:varchar(16)"`
	DocumentData  string `gorm:"type:text"`
	DocumentTitle string `gorm:"type:varchar(255)"`
	QRURL         string `gorm:"column:qr_url;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Links []LinkModel `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}

// LinkModel mirrors the 'links' table.
type LinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CardID    uuid.UUID `gorm:"type:uuid;not null;index:idx_links_card_position,priority:1"`
	Title     string    `gorm:"type:varchar(150);not null"`
	URL       string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0;index:idx_links_card_position,priority:2"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}
