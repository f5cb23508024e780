package dto

import (
	"time"

	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=180"`
	Slug        string   `json:"slug,omitempty" validate:"omitempty,max=200"`
	ShortDesc   string   `json:"short_desc" validate:"required,max=240"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"tech_stack,omitempty"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
	LiveURL     string   `json:"live_url,omitempty" validate:"omitempty,url"`
	GithubURL   string   `json:"github_url,omitempty" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required,oneof=fullstack mobile ai"`
}

// ProjectResponse duplicates the tech stack under "technologies" for older
// clients that still read that key.
type ProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	ShortDesc    string    `json:"short_desc"`
	Description  string    `json:"description"`
	TechStack    []string  `json:"tech_stack"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"image_url"`
	LiveURL      string    `json:"live_url"`
	GithubURL    string    `json:"github_url"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewProjectResponse(project *models.Project) ProjectResponse {
	techStack := []string(project.TechStack)
	if techStack == nil {
		techStack = []string{}
	}

	return ProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Slug:         project.Slug,
		ShortDesc:    project.ShortDesc,
		Description:  project.Description,
		TechStack:    techStack,
		Technologies: techStack,
		ImageURL:     project.ImageURL,
		LiveURL:      project.LiveURL,
		GithubURL:    project.GithubURL,
		Category:     string(project.Category),
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}
