package repository

import (
	"context"
	"time"

	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

type SkillRepository interface {
	SaveSkill(ctx context.Context, skill models.Skill) (uuid.UUID, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	SkillsByNames(ctx context.Context, names []string) ([]models.Skill, error)
}

type ExperienceRepository interface {
	SaveExperience(ctx context.Context, experience models.Experience) (uuid.UUID, error)
	ListExperience(ctx context.Context) ([]models.Experience, error)
}

type EducationRepository interface {
	SaveEducation(ctx context.Context, education models.Education) (uuid.UUID, error)
	ListEducation(ctx context.Context) ([]models.Education, error)
}

type BlogRepository interface {
	SaveBlog(ctx context.Context, blog models.Blog) (uuid.UUID, error)
	GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}

type ContactRepository interface {
	SaveContactMessage(ctx context.Context, message models.ContactMessage) (uuid.UUID, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// RateLimiter is the shared fixed-window counter store. Count reads the
// current value for a key; Hit records one request and returns the new count,
// starting a fresh window when the key is absent or lost its expiry.
type RateLimiter interface {
	Count(ctx context.Context, key string) (int64, error)
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}
