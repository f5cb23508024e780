package repository

import (
	"context"
	"fmt"

	"pro_portfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type EducationRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEducationRepository(db *pgxpool.Pool) *EducationRepo {
	return &EducationRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *EducationRepo) SaveEducation(ctx context.Context, education models.Education) (uuid.UUID, error) {
	const op = "repository.education_repository.SaveEducation"

	query, args, err := r.sb.Insert("education").
		Columns("degree", "institution", "start_year", "end_year", "description").
		Values(
			education.Degree,
			education.Institution,
			education.StartYear,
			education.EndYear,
			education.Description,
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

func (r *EducationRepo) ListEducation(ctx context.Context) ([]models.Education, error) {
	const op = "repository.education_repository.ListEducation"

	query, args, err := r.sb.Select(
		"id", "degree", "institution", "start_year", "end_year", "description",
	).
		From("education").
		OrderBy("start_year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []models.Education
	for rows.Next() {
		var entry models.Education
		err := rows.Scan(
			&entry.ID,
			&entry.Degree,
			&entry.Institution,
			&entry.StartYear,
			&entry.EndYear,
			&entry.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
