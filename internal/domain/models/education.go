package models

import "github.com/google/uuid"

type Education struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Degree      string    `db:"degree" json:"degree"`
	Institution string    `db:"institution" json:"institution"`
	StartYear   int       `db:"start_year" json:"start_year"`
	EndYear     *int      `db:"end_year" json:"end_year,omitempty"`
	Description string    `db:"description" json:"description"`
}

// Validate checks the field constraints of an education entry.
func (e *Education) Validate() error {
	var validationErrors []string

	if e.Degree == "" {
		validationErrors = append(validationErrors, "degree is required")
	}
	if len(e.Degree) > 180 {
		validationErrors = append(validationErrors, "degree must be 180 characters or less")
	}
	if e.Institution == "" {
		validationErrors = append(validationErrors, "institution is required")
	}
	if len(e.Institution) > 180 {
		validationErrors = append(validationErrors, "institution must be 180 characters or less")
	}
	if e.StartYear < 1900 || e.StartYear > 2100 {
		validationErrors = append(validationErrors, "start year must be between 1900 and 2100")
	}
	if e.EndYear != nil && (*e.EndYear < 1900 || *e.EndYear > 2100) {
		validationErrors = append(validationErrors, "end year must be between 1900 and 2100")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
