package repository

import (
	"context"
	"fmt"

	"pro_portfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ExperienceRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepo {
	return &ExperienceRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ExperienceRepo) SaveExperience(ctx context.Context, experience models.Experience) (uuid.UUID, error) {
	const op = "repository.experience_repository.SaveExperience"

	query, args, err := r.sb.Insert("experience").
		Columns("title", "company", "start_date", "end_date", "description", "achievements").
		Values(
			experience.Title,
			experience.Company,
			experience.StartDate,
			experience.EndDate,
			experience.Description,
			experience.Achievements,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ExperienceRepo) ListExperience(ctx context.Context) ([]models.Experience, error) {
	const op = "repository.experience_repository.ListExperience"

	query, args, err := r.sb.Select(
		"id", "title", "company", "start_date", "end_date", "description", "achievements",
	).
		From("experience").
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []models.Experience
	for rows.Next() {
		var entry models.Experience
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Company,
			&entry.StartDate,
			&entry.EndDate,
			&entry.Description,
			&entry.Achievements,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
