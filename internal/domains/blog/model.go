package blog

import (
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post is a blog entry. Title, Slug and Excerpt are per-locale maps;
// reads go through locale.Text.Get so a missing translation falls back
// to the default locale.
//
// PublishedAt records the first transition into published. A later
// unpublish keeps it; republishing through the status toggle re-stamps
// it.
type Post struct {
	ID          uuid.UUID   `json:"id"`
	Title       locale.Text `json:"title"`
	Slug        locale.Text `json:"slug"`
	Excerpt     locale.Text `json:"excerpt"`
	AuthorName  string      `json:"author_name"`
	Status      Status      `json:"status"`
	Media       Media       `json:"media"`
	PublishedAt *time.Time  `json:"published_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Published reports whether the post is publicly visible.
func (p *Post) Published() bool {
	return p.Status == StatusPublished
}
