package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminMessage is a broadcast written by an admin and visible to every user.
type AdminMessage struct {
	ID        uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
}
