package models

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Company      string     `db:"company" json:"company"`
	StartDate    time.Time  `db:"start_date" json:"start_date"`
	EndDate      *time.Time `db:"end_date" json:"end_date,omitempty"`
	Description  string     `db:"description" json:"description"`
	Achievements StringList `db:"achievements" json:"achievements"`
}

// Validate checks the field constraints of an experience entry. An end date
// before the start date is deliberately not rejected.
func (e *Experience) Validate() error {
	var validationErrors []string

	if e.Title == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(e.Title) > 180 {
		validationErrors = append(validationErrors, "title must be 180 characters or less")
	}
	if e.Company == "" {
		validationErrors = append(validationErrors, "company is required")
	}
	if len(e.Company) > 180 {
		validationErrors = append(validationErrors, "company must be 180 characters or less")
	}
	if e.StartDate.IsZero() {
		validationErrors = append(validationErrors, "start date is required")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
