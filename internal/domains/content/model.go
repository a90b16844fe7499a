package content

import (
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

// Project is a portfolio entry. Only published projects ever reach the
// public pages; featured ones additionally appear on the home page.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	Title       locale.Text `json:"title"`
	Description locale.Text `json:"description"`
	ImagePath   string      `json:"image_path"`
	Status      string      `json:"status"`
	IsFeatured  bool        `json:"is_featured"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

const ProjectPublished = "published"

// Service is an agency offering, with nested line items. Both levels
// carry a sort order controlled by the editors.
type Service struct {
	ID          uuid.UUID     `json:"id"`
	Key         string        `json:"key"`
	Title       locale.Text   `json:"title"`
	Description locale.Text   `json:"description"`
	SortOrder   int           `json:"sort_order"`
	Items       []ServiceItem `json:"items"`
}

type ServiceItem struct {
	ID        uuid.UUID   `json:"id"`
	ServiceID uuid.UUID   `json:"service_id"`
	Key       string      `json:"key"`
	Title     locale.Text `json:"title"`
	SortOrder int         `json:"sort_order"`
}

type Testimonial struct {
	ID         uuid.UUID   `json:"id"`
	AuthorName string      `json:"author_name"`
	Role       locale.Text `json:"role"`
	Quote      locale.Text `json:"quote"`
	IsFeatured bool        `json:"is_featured"`
	SortOrder  int         `json:"sort_order"`
}

// TeamMember backs the about page and the /team/:slug detail lookup.
type TeamMember struct {
	ID           uuid.UUID   `json:"id"`
	Slug         string      `json:"slug"`
	Name         string      `json:"name"`
	Role         locale.Text `json:"role"`
	Bio          locale.Text `json:"bio"`
	ImagePath    string      `json:"image_path"`
	DisplayOrder int         `json:"display_order"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
