package contact

import (
	"context"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

type Service interface {
	// Submit validates nothing itself; callers validate the DTO first.
	// It persists the message and fires the inbox notification
	// best-effort.
	Submit(ctx context.Context, req *SubmitContactReq, loc locale.Locale) (*Message, error)

	List(ctx context.Context, status *Status) ([]Message, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Message, error)
}
