package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ProjectCategory string

const (
	ProjectCategoryFullstack ProjectCategory = "fullstack"
	ProjectCategoryMobile    ProjectCategory = "mobile"
	ProjectCategoryAI        ProjectCategory = "ai"
)

type Project struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Slug        string          `db:"slug" json:"slug"`
	ShortDesc   string          `db:"short_desc" json:"short_desc"`
	Description string          `db:"description" json:"description"`
	TechStack   StringList      `db:"tech_stack" json:"tech_stack"`
	ImageURL    string          `db:"image_url" json:"image_url"`
	LiveURL     string          `db:"live_url" json:"live_url"`
	GithubURL   string          `db:"github_url" json:"github_url"`
	Category    ProjectCategory `db:"category" json:"category"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Validate checks the field constraints of a project before it is stored.
func (p *Project) Validate() error {
	var validationErrors []string

	if p.Title == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if len(p.Title) > 180 {
		validationErrors = append(validationErrors, "title must be 180 characters or less")
	}
	if p.ShortDesc == "" {
		validationErrors = append(validationErrors, "short description is required")
	}
	if len(p.ShortDesc) > 240 {
		validationErrors = append(validationErrors, "short description must be 240 characters or less")
	}

	switch p.Category {
	case ProjectCategoryFullstack, ProjectCategoryMobile, ProjectCategoryAI:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid category '%s', must be one of: fullstack, mobile, ai", p.Category))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
