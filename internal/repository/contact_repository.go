package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio/internal/domain/models"
)

const contactTable = "contact_submissions"

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

func (r *ContactRepo) SaveSubmission(ctx context.Context, sub models.ContactSubmission) error {
	const op = "repository.contact_repository.SaveSubmission"

	query, args, err := r.sb.Insert(contactTable).
		Columns("id", "title", "name", "email", "phone", "message", "status", "error", "created_at").
		Values(sub.ID, sub.Title, sub.Name, sub.Email, sub.Phone, sub.Message, string(sub.Status), sub.Error, sub.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListSubmissions returns one page of submissions, newest first, together
// with the total number of archived rows.
func (r *ContactRepo) ListSubmissions(ctx context.Context, page, perPage int) ([]models.ContactSubmission, int, error) {
	const op = "repository.contact_repository.ListSubmissions"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From(contactTable).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.
		Select("id", "title", "name", "email", "phone", "message", "status", "error", "created_at").
		From(contactTable).
		OrderBy("created_at DESC", "id").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	subs := make([]models.ContactSubmission, 0, perPage)
	for rows.Next() {
		var (
			sub    models.ContactSubmission
			status string
		)
		if err := rows.Scan(
			&sub.ID,
			&sub.Title,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Message,
			&status,
			&sub.Error,
			&sub.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		sub.Status = models.ContactStatus(status)
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return subs, total, nil
}
