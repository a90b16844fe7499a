package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flowsite-backend/internal/domains/contact"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &PostgresRepository{pool: pool}
}

const messageColumns = `id, name, email, message, locale, consent, consent_at, status, submitted_at`

func (r *PostgresRepository) Insert(ctx context.Context, msg *contact.Message) error {
	query := `
		INSERT INTO contact_messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.Locale,
		msg.Consent, msg.ConsentAt, msg.Status, msg.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, status *contact.Status) ([]contact.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []contact.Message{}
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Message, &m.Locale,
			&m.Consent, &m.ConsentAt, &m.Status, &m.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact messages: %w", err)
	}

	return messages, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status contact.Status) (*contact.Message, error) {
	query := `
		UPDATE contact_messages
		SET status = $2
		WHERE id = $1
		RETURNING ` + messageColumns

	var m contact.Message
	err := r.pool.QueryRow(ctx, query, id, status).Scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Locale,
		&m.Consent, &m.ConsentAt, &m.Status, &m.SubmittedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, contact.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact message status: %w", err)
	}

	return &m, nil
}
