package blog

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"flowsite-backend/internal/shared/locale"
)

// ImageUpload is a decoded multipart image file.
// Ext keeps the leading dot (".jpg") so the storage key is a plain
// concatenation.
type ImageUpload struct {
	Data        []byte
	Ext         string
	ContentType string
}

// PostInput is the editor payload for create and update, assembled by
// the handler from the multipart form.
//
// Slug is optional: empty means derive from the default-locale title.
// A supplied slug is still normalized through the same derivation.
type PostInput struct {
	Title      locale.Text
	Excerpt    locale.Text
	Slug       string
	AuthorName string
	Status     Status
	MediaType  MediaType
	VideoURL   string
	Image      *ImageUpload
}

func (r PostInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(func(any) error {
			if r.Title.Get(locale.Default) == "" {
				return errors.New("title is required for the default locale")
			}
			return nil
		})),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusDraft, StatusPublished).Error("status must be draft or published"),
		),
		validation.Field(&r.MediaType,
			validation.Required.Error("media_type is required"),
			validation.In(MediaImage, MediaVideo).Error("media_type must be image or video"),
		),
		validation.Field(&r.VideoURL,
			validation.Required.When(r.MediaType == MediaVideo).Error("video_url is required for video posts"),
			validation.When(r.VideoURL != "", is.URL.Error("video_url must be a valid URL")),
		),
	)
}

// PostListItem is the public listing shape, localized for one locale.
type PostListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	AuthorName  string `json:"author_name"`
	MediaType   string `json:"media_type"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Localize projects a post for one locale.
func (p *Post) Localize(loc locale.Locale) PostListItem {
	item := PostListItem{
		ID:         p.ID.String(),
		Title:      p.Title.Get(loc),
		Slug:       p.Slug.Get(loc),
		Excerpt:    p.Excerpt.Get(loc),
		AuthorName: p.AuthorName,
		MediaType:  string(p.Media.Type),
		Thumbnail:  p.Media.Thumbnail(),
		VideoURL:   p.Media.VideoURL,
	}
	if p.PublishedAt != nil {
		item.PublishedAt = p.PublishedAt.UTC().Format(time.RFC3339)
	}
	return item
}

// LocalizePosts projects a list of posts for one locale.
func LocalizePosts(posts []Post, loc locale.Locale) []PostListItem {
	items := make([]PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, posts[i].Localize(loc))
	}
	return items
}
