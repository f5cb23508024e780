package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is immutable once stored; the timestamp is server-assigned.
type ContactMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
