package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flowsite-backend/internal/domains/newsletter"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) newsletter.Repository {
	return &PostgresRepository{pool: pool}
}

const subscriberColumns = `id, email, locale, status, source, consent_at, created_at, updated_at`

// Upsert relies on the unique index on email: a resubscribe reactivates
// the existing row and refreshes consent, it never duplicates.
func (r *PostgresRepository) Upsert(ctx context.Context, sub *newsletter.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (` + subscriberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO UPDATE SET
			status     = 'active',
			locale     = EXCLUDED.locale,
			source     = EXCLUDED.source,
			consent_at = EXCLUDED.consent_at,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + subscriberColumns

	err := r.pool.QueryRow(ctx, query,
		sub.ID, sub.Email, sub.Locale, sub.Status, sub.Source,
		sub.ConsentAt, sub.CreatedAt, sub.UpdatedAt,
	).Scan(
		&sub.ID, &sub.Email, &sub.Locale, &sub.Status, &sub.Source,
		&sub.ConsentAt, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert subscriber: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetStatus(ctx context.Context, email string, status newsletter.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers SET status = $2, updated_at = now() WHERE email = $1`,
		email, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscriber status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return newsletter.ErrSubscriberNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, status *newsletter.Status) ([]newsletter.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM newsletter_subscribers`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subs := []newsletter.Subscriber{}
	for rows.Next() {
		var s newsletter.Subscriber
		if err := rows.Scan(
			&s.ID, &s.Email, &s.Locale, &s.Status, &s.Source,
			&s.ConsentAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscribers: %w", err)
	}

	return subs, nil
}
