package dto

import (
	"time"

	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"required,max=180"`
	Slug       string   `json:"slug,omitempty" validate:"omitempty,max=200"`
	ShortDesc  string   `json:"short_desc" validate:"required,max=240"`
	Category   string   `json:"category" validate:"required,max=50"`
	ReadTime   string   `json:"read_time,omitempty" validate:"omitempty,max=50"`
	Date       string   `json:"date,omitempty" validate:"omitempty,max=50"`
	ImageURL   string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Images     []string `json:"images,omitempty"`
	Story      string   `json:"story" validate:"required"`
	Highlights []string `json:"highlights,omitempty"`
}

type BlogResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	ShortDesc  string    `json:"short_desc"`
	Category   string    `json:"category"`
	ReadTime   string    `json:"read_time"`
	Date       string    `json:"date"`
	ImageURL   string    `json:"image_url"`
	Images     []string  `json:"images"`
	Story      string    `json:"story"`
	Highlights []string  `json:"highlights"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBlogResponse(blog *models.Blog) BlogResponse {
	images := []string(blog.Images)
	if images == nil {
		images = []string{}
	}
	highlights := []string(blog.Highlights)
	if highlights == nil {
		highlights = []string{}
	}

	return BlogResponse{
		ID:         blog.ID,
		Title:      blog.Title,
		Slug:       blog.Slug,
		ShortDesc:  blog.ShortDesc,
		Category:   blog.Category,
		ReadTime:   blog.ReadTime,
		Date:       blog.Date,
		ImageURL:   blog.ImageURL,
		Images:     images,
		Story:      blog.Story,
		Highlights: highlights,
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}
}
