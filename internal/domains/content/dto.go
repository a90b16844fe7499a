package content

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
)

// Localized projections. Page payloads carry these, never the raw
// locale.Text maps, so the frontend receives plain strings.

type ProjectView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path,omitempty"`
}

type ServiceItemView struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type ServiceView struct {
	Key         string            `json:"key"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Items       []ServiceItemView `json:"items"`
}

type TestimonialView struct {
	AuthorName string `json:"author_name"`
	Role       string `json:"role"`
	Quote      string `json:"quote"`
}

type TeamMemberView struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	ImagePath string `json:"image_path,omitempty"`
}

// Page payloads, one per public page route.

type HomePage struct {
	Services         []ServiceView     `json:"services"`
	Testimonials     []TestimonialView `json:"testimonials"`
	FeaturedProjects []ProjectView     `json:"featured_projects"`
}

type ServicesPage struct {
	Services []ServiceView `json:"services"`
}

type ProjectsPage struct {
	Projects []ProjectView `json:"projects"`
}

type BlogPage struct {
	Posts []blog.PostListItem `json:"posts"`
}

type AboutPage struct {
	Team []TeamMemberView `json:"team"`
}

func (p Project) Localize(loc locale.Locale) ProjectView {
	return ProjectView{
		ID:          p.ID.String(),
		Title:       p.Title.Get(loc),
		Description: p.Description.Get(loc),
		ImagePath:   p.ImagePath,
	}
}

func (s Service) Localize(loc locale.Locale) ServiceView {
	items := make([]ServiceItemView, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, ServiceItemView{Key: it.Key, Title: it.Title.Get(loc)})
	}
	return ServiceView{
		Key:         s.Key,
		Title:       s.Title.Get(loc),
		Description: s.Description.Get(loc),
		Items:       items,
	}
}

func (t Testimonial) Localize(loc locale.Locale) TestimonialView {
	return TestimonialView{
		AuthorName: t.AuthorName,
		Role:       t.Role.Get(loc),
		Quote:      t.Quote.Get(loc),
	}
}

func (m TeamMember) Localize(loc locale.Locale) TeamMemberView {
	return TeamMemberView{
		Slug:      m.Slug,
		Name:      m.Name,
		Role:      m.Role.Get(loc),
		Bio:       m.Bio.Get(loc),
		ImagePath: m.ImagePath,
	}
}

// TeamMemberInput is the admin editor payload. The slug is derived from
// the name server-side.
type TeamMemberInput struct {
	Name         string      `json:"name"`
	Role         locale.Text `json:"role"`
	Bio          locale.Text `json:"bio"`
	ImagePath    string      `json:"image_path"`
	DisplayOrder int         `json:"display_order"`
}

func (r TeamMemberInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 0).Error("name must be at least 2 characters"),
		),
		validation.Field(&r.Role, validation.By(func(any) error {
			if r.Role.Get(locale.Default) == "" {
				return errors.New("role is required for the default locale")
			}
			return nil
		})),
		validation.Field(&r.DisplayOrder,
			validation.Min(0).Error("display_order must not be negative"),
		),
	)
}
