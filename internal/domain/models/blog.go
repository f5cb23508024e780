package models

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Slug       string     `db:"slug" json:"slug"`
	ShortDesc  string     `db:"short_desc" json:"short_desc"`
	Category   string     `db:"category" json:"category"`
	ReadTime   string     `db:"read_time" json:"read_time"`
	Date       string     `db:"date" json:"date"`
	ImageURL   string     `db:"image_url" json:"image_url"`
	Images     StringList `db:"images" json:"images"`
	Story      string     `db:"story" json:"story"`
	Highlights StringList `db:"highlights" json:"highlights"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Validate checks the field constraints of a blog post before it is stored.
func (b *Blog) Validate() error {
	var validationErrors []string

	if b.Title == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(b.Title) > 180 {
		validationErrors = append(validationErrors, "title must be 180 characters or less")
	}
	if b.ShortDesc == "" {
		validationErrors = append(validationErrors, "short description is required")
	}
	if len(b.ShortDesc) > 240 {
		validationErrors = append(validationErrors, "short description must be 240 characters or less")
	}
	if b.Category == "" {
		validationErrors = append(validationErrors, "category is required")
	}
	if len(b.Category) > 50 {
		validationErrors = append(validationErrors, "category must be 50 characters or less")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
