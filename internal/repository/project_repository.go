package repository

import (
	"context"
	"errors"
	"fmt"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

type ProjectRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProjectRepo) SaveProject(ctx context.Context, project models.Project) (uuid.UUID, error) {
	const op = "repository.project_repository.SaveProject"

	query, args, err := r.sb.Insert("projects").
		Columns(
			"title",
			"slug",
			"short_desc",
			"description",
			"tech_stack",
			"image_url",
			"live_url",
			"github_url",
			"category",
			"created_at",
			"updated_at",
		).
		Values(
			project.Title,
			project.Slug,
			project.ShortDesc,
			project.Description,
			project.TechStack,
			project.ImageURL,
			project.LiveURL,
			project.GithubURL,
			project.Category,
			project.CreatedAt,
			project.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrDuplicateSlug)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ProjectRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	const op = "repository.project_repository.GetProjectBySlug"

	query, args, err := r.projectSelect().
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var project models.Project
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.ShortDesc,
		&project.Description,
		&project.TechStack,
		&project.ImageURL,
		&project.LiveURL,
		&project.GithubURL,
		&project.Category,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &project, nil
}

func (r *ProjectRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	const op = "repository.project_repository.ListProjects"

	query, args, err := r.projectSelect().
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Slug,
			&project.ShortDesc,
			&project.Description,
			&project.TechStack,
			&project.ImageURL,
			&project.LiveURL,
			&project.GithubURL,
			&project.Category,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (r *ProjectRepo) projectSelect() sq.SelectBuilder {
	return r.sb.Select(
		"id", "title", "slug", "short_desc", "description", "tech_stack",
		"image_url", "live_url", "github_url", "category", "created_at", "updated_at",
	).From("projects")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
