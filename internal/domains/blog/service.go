package blog

import (
	"context"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

type Service interface {
	Create(ctx context.Context, in *PostInput) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, in *PostInput) (*Post, error)

	// ToggleStatus flips draft and published. Publishing through the
	// toggle always re-stamps PublishedAt.
	ToggleStatus(ctx context.Context, id uuid.UUID) (*Post, error)

	Delete(ctx context.Context, id uuid.UUID) error

	AdminList(ctx context.Context) ([]Post, error)
	Published(ctx context.Context) ([]Post, error)
	GetPublishedBySlug(ctx context.Context, loc locale.Locale, slug string) (*Post, error)
}
