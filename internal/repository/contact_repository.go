package repository

import (
	"context"
	"fmt"

	"pro_portfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ContactRepo) SaveContactMessage(ctx context.Context, message models.ContactMessage) (uuid.UUID, error) {
	const op = "repository.contact_repository.SaveContactMessage"

	query, args, err := r.sb.Insert("contact_messages").
		Columns("name", "email", "message", "created_at").
		Values(message.Name, message.Email, message.Message, message.CreatedAt).
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

func (r *ContactRepo) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "repository.contact_repository.ListContactMessages"

	query, args, err := r.sb.Select("id", "name", "email", "message", "created_at").
		From("contact_messages").
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

	var messages []models.ContactMessage
	for rows.Next() {
		var message models.ContactMessage
		err := rows.Scan(&message.ID, &message.Name, &message.Email, &message.Message, &message.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}
