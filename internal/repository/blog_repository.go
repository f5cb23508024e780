package repository

import (
	"context"
	"errors"
	"fmt"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type BlogRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepo {
	return &BlogRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BlogRepo) SaveBlog(ctx context.Context, blog models.Blog) (uuid.UUID, error) {
	const op = "repository.blog_repository.SaveBlog"

	query, args, err := r.sb.Insert("blogs").
		Columns(
			"title",
			"slug",
			"short_desc",
			"category",
			"read_time",
			"date",
			"image_url",
			"images",
			"story",
			"highlights",
			"created_at",
			"updated_at",
		).
		Values(
			blog.Title,
			blog.Slug,
			blog.ShortDesc,
			blog.Category,
			blog.ReadTime,
			blog.Date,
			blog.ImageURL,
			blog.Images,
			blog.Story,
			blog.Highlights,
			blog.CreatedAt,
			blog.UpdatedAt,
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

func (r *BlogRepo) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	const op = "repository.blog_repository.GetBlogBySlug"

	query, args, err := r.blogSelect().
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var blog models.Blog
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.ShortDesc,
		&blog.Category,
		&blog.ReadTime,
		&blog.Date,
		&blog.ImageURL,
		&blog.Images,
		&blog.Story,
		&blog.Highlights,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &blog, nil
}

func (r *BlogRepo) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	const op = "repository.blog_repository.ListBlogs"

	query, args, err := r.blogSelect().
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

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Slug,
			&blog.ShortDesc,
			&blog.Category,
			&blog.ReadTime,
			&blog.Date,
			&blog.ImageURL,
			&blog.Images,
			&blog.Story,
			&blog.Highlights,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		blogs = append(blogs, blog)
	}

	return blogs, nil
}

func (r *BlogRepo) blogSelect() sq.SelectBuilder {
	return r.sb.Select(
		"id", "title", "slug", "short_desc", "category", "read_time", "date",
		"image_url", "images", "story", "highlights", "created_at", "updated_at",
	).From("blogs")
}
