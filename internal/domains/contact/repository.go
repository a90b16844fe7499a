package contact

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, msg *Message) error

	// List returns messages newest first, optionally filtered by status.
	List(ctx context.Context, status *Status) ([]Message, error)

	// UpdateStatus returns ErrMessageNotFound when no row matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Message, error)
}
