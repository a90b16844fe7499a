package blog

import (
	"context"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

type Repository interface {
	Insert(ctx context.Context, post *Post) error
	Update(ctx context.Context, post *Post) error

	// GetByID returns ErrPostNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Delete returns ErrPostNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every post, newest first, both statuses.
	List(ctx context.Context) ([]Post, error)

	// ListPublished returns published posts, newest publication first.
	ListPublished(ctx context.Context) ([]Post, error)

	// GetPublishedBySlug matches the slug in the given locale, falling
	// back to the default-locale slug.
	GetPublishedBySlug(ctx context.Context, loc locale.Locale, slug string) (*Post, error)

	// SetImagePath writes back the storage URL after the two-step
	// image attach.
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
}

// AssetStore is the slice of object storage the blog needs. MinIO
// implements it; tests use an in-memory fake.
type AssetStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}
