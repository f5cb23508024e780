package dto

import "time"

type CreateExperienceRequest struct {
	Title        string     `json:"title" validate:"required,max=180"`
	Company      string     `json:"company" validate:"required,max=180"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements,omitempty"`
}
