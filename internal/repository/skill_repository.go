package repository

import (
	"context"
	"fmt"

	"pro_portfolio/internal/domain/models"
	"pro_portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type SkillRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSkillRepository(db *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SkillRepo) SaveSkill(ctx context.Context, skill models.Skill) (uuid.UUID, error) {
	const op = "repository.skill_repository.SaveSkill"

	query, args, err := r.sb.Insert("skills").
		Columns("name", "category", "icon_url", "proficiency_level").
		Values(skill.Name, skill.Category, skill.IconURL, skill.ProficiencyLevel).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrNameTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SkillRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	const op = "repository.skill_repository.ListSkills"

	query, args, err := r.skillSelect().
		OrderBy("category ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.querySkills(ctx, op, query, args)
}

// SkillsByNames returns the skills whose names appear in the given set, in
// store order; callers reorder as needed.
func (r *SkillRepo) SkillsByNames(ctx context.Context, names []string) ([]models.Skill, error) {
	const op = "repository.skill_repository.SkillsByNames"

	if len(names) == 0 {
		return nil, nil
	}

	query, args, err := r.skillSelect().
		Where(sq.Expr("name = ANY(?)", pq.Array(names))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.querySkills(ctx, op, query, args)
}

func (r *SkillRepo) skillSelect() sq.SelectBuilder {
	return r.sb.Select("id", "name", "category", "icon_url", "proficiency_level").From("skills")
}

func (r *SkillRepo) querySkills(ctx context.Context, op, query string, args []interface{}) ([]models.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var skill models.Skill
		err := rows.Scan(&skill.ID, &skill.Name, &skill.Category, &skill.IconURL, &skill.ProficiencyLevel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		skills = append(skills, skill)
	}

	return skills, nil
}
