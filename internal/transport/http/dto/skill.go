package dto

import (
	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type CreateSkillRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Category         string `json:"category" validate:"required,oneof=frontend backend mobile ai tools"`
	IconURL          string `json:"icon_url,omitempty" validate:"omitempty,url"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"required,min=1,max=100"`
}

type SkillResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	IconURL          string    `json:"icon_url"`
	ProficiencyLevel int       `json:"proficiency_level"`
}

func NewSkillResponse(skill models.Skill) SkillResponse {
	return SkillResponse{
		ID:               skill.ID,
		Name:             skill.Name,
		Category:         string(skill.Category),
		IconURL:          skill.IconURL,
		ProficiencyLevel: skill.ProficiencyLevel,
	}
}
