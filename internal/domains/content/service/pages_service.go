package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/domains/content"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/internal/shared/utils"
	"flowsite-backend/pkg/cache"
	"flowsite-backend/pkg/logger"
)

const (
	pageTTL          = 5 * time.Minute
	featuredLimit    = 6
	aboutPagePattern = "pages:about:*"
)

type pagesService struct {
	repo  content.Repository
	cache cache.Cache
}

func NewPagesService(repo content.Repository, c cache.Cache) content.PagesService {
	return &pagesService{repo: repo, cache: c}
}

func pageKey(page string, loc locale.Locale) string {
	return fmt.Sprintf("pages:%s:%s", page, loc)
}

// cached runs the cache-aside pattern for one composed page payload.
// Cache failures degrade to a direct read.
func cached[T any](ctx context.Context, c cache.Cache, key string, load func() (*T, error)) (*T, error) {
	var payload T
	if found, err := c.Get(ctx, key, &payload); err != nil {
		logger.Error("page cache read failed", err)
	} else if found {
		return &payload, nil
	}

	result, err := load()
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, result, pageTTL); err != nil {
		logger.Error("page cache write failed", err)
	}
	return result, nil
}

func (s *pagesService) HomePage(ctx context.Context, loc locale.Locale) (*content.HomePage, error) {
	return cached(ctx, s.cache, pageKey("home", loc), func() (*content.HomePage, error) {
		services, err := s.repo.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		testimonials, err := s.repo.ListFeaturedTestimonials(ctx)
		if err != nil {
			return nil, err
		}
		projects, err := s.repo.ListFeaturedProjects(ctx, featuredLimit)
		if err != nil {
			return nil, err
		}

		page := &content.HomePage{
			Services:         make([]content.ServiceView, 0, len(services)),
			Testimonials:     make([]content.TestimonialView, 0, len(testimonials)),
			FeaturedProjects: make([]content.ProjectView, 0, len(projects)),
		}
		for _, sv := range services {
			page.Services = append(page.Services, sv.Localize(loc))
		}
		for _, t := range testimonials {
			page.Testimonials = append(page.Testimonials, t.Localize(loc))
		}
		for _, p := range projects {
			page.FeaturedProjects = append(page.FeaturedProjects, p.Localize(loc))
		}
		return page, nil
	})
}

func (s *pagesService) ServicesPage(ctx context.Context, loc locale.Locale) (*content.ServicesPage, error) {
	return cached(ctx, s.cache, pageKey("services", loc), func() (*content.ServicesPage, error) {
		services, err := s.repo.ListServices(ctx)
		if err != nil {
			return nil, err
		}

		page := &content.ServicesPage{Services: make([]content.ServiceView, 0, len(services))}
		for _, sv := range services {
			page.Services = append(page.Services, sv.Localize(loc))
		}
		return page, nil
	})
}

func (s *pagesService) ProjectsPage(ctx context.Context, loc locale.Locale) (*content.ProjectsPage, error) {
	return cached(ctx, s.cache, pageKey("projects", loc), func() (*content.ProjectsPage, error) {
		projects, err := s.repo.ListPublishedProjects(ctx)
		if err != nil {
			return nil, err
		}

		page := &content.ProjectsPage{Projects: make([]content.ProjectView, 0, len(projects))}
		for _, p := range projects {
			page.Projects = append(page.Projects, p.Localize(loc))
		}
		return page, nil
	})
}

func (s *pagesService) AboutPage(ctx context.Context, loc locale.Locale) (*content.AboutPage, error) {
	return cached(ctx, s.cache, pageKey("about", loc), func() (*content.AboutPage, error) {
		members, err := s.repo.ListTeamMembers(ctx)
		if err != nil {
			return nil, err
		}

		page := &content.AboutPage{Team: make([]content.TeamMemberView, 0, len(members))}
		for _, m := range members {
			page.Team = append(page.Team, m.Localize(loc))
		}
		return page, nil
	})
}

func (s *pagesService) TeamMemberDetail(ctx context.Context, loc locale.Locale, slug string) (*content.TeamMemberView, error) {
	member, err := s.repo.GetTeamMemberBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	view := member.Localize(loc)
	return &view, nil
}

func (s *pagesService) ListTeam(ctx context.Context) ([]content.TeamMember, error) {
	return s.repo.ListTeamMembers(ctx)
}

func (s *pagesService) CreateTeamMember(ctx context.Context, in *content.TeamMemberInput) (*content.TeamMember, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", content.ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	member := &content.TeamMember{
		ID:           uuid.New(),
		Slug:         utils.GenerateSlug(in.Name),
		Name:         in.Name,
		Role:         in.Role,
		Bio:          in.Bio,
		ImagePath:    in.ImagePath,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.InsertTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	s.invalidateAbout(ctx)
	return member, nil
}

func (s *pagesService) UpdateTeamMember(ctx context.Context, id uuid.UUID, in *content.TeamMemberInput) (*content.TeamMember, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", content.ErrInvalidInput, err)
	}

	member, err := s.repo.GetTeamMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = in.Name
	member.Slug = utils.GenerateSlug(in.Name)
	member.Role = in.Role
	member.Bio = in.Bio
	member.ImagePath = in.ImagePath
	member.DisplayOrder = in.DisplayOrder
	member.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	s.invalidateAbout(ctx)
	return member, nil
}

func (s *pagesService) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	s.invalidateAbout(ctx)
	return nil
}

func (s *pagesService) invalidateAbout(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, aboutPagePattern); err != nil {
		logger.Error("about page cache invalidation failed", err)
	}
}
