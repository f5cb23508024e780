package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db         *pgxpool.Pool
	Project    ProjectRepository
	Skill      SkillRepository
	Experience ExperienceRepository
	Education  EducationRepository
	Blog       BlogRepository
	Contact    ContactRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:         db,
		Project:    NewProjectRepository(db),
		Skill:      NewSkillRepository(db),
		Experience: NewExperienceRepository(db),
		Education:  NewEducationRepository(db),
		Blog:       NewBlogRepository(db),
		Contact:    NewContactRepository(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
