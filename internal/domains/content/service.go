package content

import (
	"context"

	"github.com/google/uuid"

	"flowsite-backend/internal/shared/locale"
)

// PagesService composes localized page payloads and owns the admin
// team editor.
type PagesService interface {
	HomePage(ctx context.Context, loc locale.Locale) (*HomePage, error)
	ServicesPage(ctx context.Context, loc locale.Locale) (*ServicesPage, error)
	ProjectsPage(ctx context.Context, loc locale.Locale) (*ProjectsPage, error)
	AboutPage(ctx context.Context, loc locale.Locale) (*AboutPage, error)
	TeamMemberDetail(ctx context.Context, loc locale.Locale, slug string) (*TeamMemberView, error)

	ListTeam(ctx context.Context) ([]TeamMember, error)
	CreateTeamMember(ctx context.Context, in *TeamMemberInput) (*TeamMember, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, in *TeamMemberInput) (*TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
}
