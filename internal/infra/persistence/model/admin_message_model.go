package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminMessageModel mirrors the 'admin_messages' table.
type AdminMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AdminMessageModel) TableName() string {
	return "admin_messages"
}
