package content

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// ListServices returns services with nested items, both levels
	// ordered by sort order.
	ListServices(ctx context.Context) ([]Service, error)

	// ListPublishedProjects returns published projects, newest
	// publication first.
	ListPublishedProjects(ctx context.Context) ([]Project, error)

	// ListFeaturedProjects returns published featured projects, newest
	// first, capped at limit.
	ListFeaturedProjects(ctx context.Context, limit int) ([]Project, error)

	// ListFeaturedTestimonials returns featured testimonials in sort
	// order.
	ListFeaturedTestimonials(ctx context.Context) ([]Testimonial, error)

	// ListTeamMembers returns every member ordered by display order.
	ListTeamMembers(ctx context.Context) ([]TeamMember, error)

	// GetTeamMemberBySlug returns ErrNotFound when no row matches.
	GetTeamMemberBySlug(ctx context.Context, slug string) (*TeamMember, error)

	InsertTeamMember(ctx context.Context, m *TeamMember) error
	UpdateTeamMember(ctx context.Context, m *TeamMember) error
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
	GetTeamMemberByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)
}
