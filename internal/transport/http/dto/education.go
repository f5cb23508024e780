package dto

import (
	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type CreateEducationRequest struct {
	Degree      string `json:"degree" validate:"required,max=180"`
	Institution string `json:"institution" validate:"required,max=180"`
	StartYear   int    `json:"start_year" validate:"required,min=1900,max=2100"`
	EndYear     *int   `json:"end_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Description string `json:"description,omitempty"`
}

type EducationResponse struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	StartYear   int       `json:"start_year"`
	EndYear     *int      `json:"end_year"`
	Description string    `json:"description"`
}

func NewEducationResponse(education models.Education) EducationResponse {
	return EducationResponse{
		ID:          education.ID,
		Degree:      education.Degree,
		Institution: education.Institution,
		StartYear:   education.StartYear,
		EndYear:     education.EndYear,
		Description: education.Description,
	}
}
