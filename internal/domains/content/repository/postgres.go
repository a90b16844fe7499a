package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flowsite-backend/internal/domains/content"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) content.Repository {
	return &PostgresRepository{pool: pool}
}

const (
	projectColumns = `id, title, description, image_path, status, is_featured, published_at, created_at`
	memberColumns  = `id, slug, name, role, bio, image_path, display_order, created_at, updated_at`
)

func (r *PostgresRepository) ListServices(ctx context.Context) ([]content.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, key, title, description, sort_order
		FROM services
		ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []content.Service{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var s content.Service
		if err := rows.Scan(&s.ID, &s.Key, &s.Title, &s.Description, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		s.Items = []content.ServiceItem{}
		index[s.ID] = len(services)
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read services: %w", err)
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT id, service_id, key, title, sort_order
		FROM service_items
		ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list service items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it content.ServiceItem
		if err := itemRows.Scan(&it.ID, &it.ServiceID, &it.Key, &it.Title, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan service item: %w", err)
		}
		if i, ok := index[it.ServiceID]; ok {
			services[i].Items = append(services[i].Items, it)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read service items: %w", err)
	}

	return services, nil
}

func (r *PostgresRepository) ListPublishedProjects(ctx context.Context) ([]content.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE status = 'published'
		ORDER BY published_at DESC`
	return r.queryProjects(ctx, query)
}

func (r *PostgresRepository) ListFeaturedProjects(ctx context.Context, limit int) ([]content.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE status = 'published' AND is_featured
		ORDER BY published_at DESC
		LIMIT $1`
	return r.queryProjects(ctx, query, limit)
}

func (r *PostgresRepository) queryProjects(ctx context.Context, query string, args ...any) ([]content.Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []content.Project{}
	for rows.Next() {
		var p content.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImagePath, &p.Status,
			&p.IsFeatured, &p.PublishedAt, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

func (r *PostgresRepository) ListFeaturedTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author_name, role, quote, is_featured, sort_order
		FROM testimonials
		WHERE is_featured
		ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []content.Testimonial{}
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.ID, &t.AuthorName, &t.Role, &t.Quote, &t.IsFeatured, &t.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *PostgresRepository) ListTeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+memberColumns+`
		FROM team_members
		ORDER BY display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := []content.TeamMember{}
	for rows.Next() {
		var m content.TeamMember
		if err := scanMember(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team members: %w", err)
	}

	return members, nil
}

func scanMember(row pgx.Row, m *content.TeamMember) error {
	return row.Scan(
		&m.ID, &m.Slug, &m.Name, &m.Role, &m.Bio,
		&m.ImagePath, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt,
	)
}

func (r *PostgresRepository) GetTeamMemberBySlug(ctx context.Context, slug string) (*content.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE slug = $1`

	var m content.TeamMember
	err := scanMember(r.pool.QueryRow(ctx, query, slug), &m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) GetTeamMemberByID(ctx context.Context, id uuid.UUID) (*content.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`

	var m content.TeamMember
	err := scanMember(r.pool.QueryRow(ctx, query, id), &m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) InsertTeamMember(ctx context.Context, m *content.TeamMember) error {
	query := `
		INSERT INTO team_members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Slug, m.Name, m.Role, m.Bio,
		m.ImagePath, m.DisplayOrder, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateTeamMember(ctx context.Context, m *content.TeamMember) error {
	query := `
		UPDATE team_members
		SET slug = $2, name = $3, role = $4, bio = $5, image_path = $6,
		    display_order = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		m.ID, m.Slug, m.Name, m.Role, m.Bio,
		m.ImagePath, m.DisplayOrder, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return content.ErrNotFound
	}
	return nil
}
