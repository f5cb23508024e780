package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/lib/logger/sl"
	"pro_portfolio/internal/lib/slug"
	"pro_portfolio/internal/repository"
	"pro_portfolio/internal/transport/http/dto"
)

type BlogService struct {
	log  *slog.Logger
	repo repository.BlogRepository
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository) *BlogService {
	return &BlogService{log: log, repo: repo}
}

func (s *BlogService) CreateBlog(ctx context.Context, req dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	const op = "blog_service.CreateBlog"
	log := s.log.With(slog.String("op", op))

	blog := models.Blog{
		Title:      req.Title,
		Slug:       req.Slug,
		ShortDesc:  req.ShortDesc,
		Category:   req.Category,
		ReadTime:   req.ReadTime,
		Date:       req.Date,
		ImageURL:   req.ImageURL,
		Images:     models.StringList(req.Images),
		Story:      req.Story,
		Highlights: models.StringList(req.Highlights),
	}

	if err := blog.Validate(); err != nil {
		log.Warn("blog post failed validation", sl.Err(err))
		return nil, err
	}

	if blog.Slug == "" {
		blog.Slug = slug.Make(blog.Title)
		log.Debug("derived slug from title", slog.String("slug", blog.Slug))
	}

	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	id, err := s.repo.SaveBlog(ctx, blog)
	if err != nil {
		log.Error("failed to save blog post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	blog.ID = id
	log.Info("blog post created", slog.String("id", id.String()), slog.String("slug", blog.Slug))

	resp := dto.NewBlogResponse(&blog)

	return &resp, nil
}

func (s *BlogService) ListBlogs(ctx context.Context) ([]dto.BlogResponse, error) {
	const op = "blog_service.ListBlogs"
	log := s.log.With(slog.String("op", op))

	blogs, err := s.repo.ListBlogs(ctx)
	if err != nil {
		log.Error("failed to list blog posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, dto.NewBlogResponse(&blogs[i]))
	}

	return out, nil
}

func (s *BlogService) GetBlogBySlug(ctx context.Context, slugVal string) (*dto.BlogResponse, error) {
	const op = "blog_service.GetBlogBySlug"
	log := s.log.With(slog.String("op", op), slog.String("slug", slugVal))

	blog, err := s.repo.GetBlogBySlug(ctx, slugVal)
	if err != nil {
		log.Info("blog lookup failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.NewBlogResponse(blog)

	return &resp, nil
}
