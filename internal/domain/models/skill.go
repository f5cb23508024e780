package models

import (
	"fmt"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "frontend"
	SkillCategoryBackend  SkillCategory = "backend"
	SkillCategoryMobile   SkillCategory = "mobile"
	SkillCategoryAI       SkillCategory = "ai"
	SkillCategoryTools    SkillCategory = "tools"
)

type Skill struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	Name             string        `db:"name" json:"name"`
	Category         SkillCategory `db:"category" json:"category"`
	IconURL          string        `db:"icon_url" json:"icon_url"`
	ProficiencyLevel int           `db:"proficiency_level" json:"proficiency_level"`
}

// Validate checks the field constraints of a skill before it is stored.
func (s *Skill) Validate() error {
	var validationErrors []string

	if s.Name == "" {
		validationErrors = append(validationErrors, "name is required")
	}
	if len(s.Name) > 100 {
		validationErrors = append(validationErrors, "name must be 100 characters or less")
	}

	switch s.Category {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryMobile, SkillCategoryAI, SkillCategoryTools:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid category '%s', must be one of: frontend, backend, mobile, ai, tools", s.Category))
	}

	if s.ProficiencyLevel < 1 || s.ProficiencyLevel > 100 {
		validationErrors = append(validationErrors, "proficiency level must be between 1 and 100")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
