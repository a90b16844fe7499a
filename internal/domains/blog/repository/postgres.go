package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &PostgresRepository{pool: pool}
}

const postColumns = `id, title, slug, excerpt, author_name, status, media_type, featured_image_path, video_url, published_at, created_at, updated_at`

func scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.AuthorName, &p.Status,
		&p.Media.Type, &p.Media.ImagePath, &p.Media.VideoURL,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, post *blog.Post) error {
	query := `
		INSERT INTO blog_posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.AuthorName, post.Status,
		post.Media.Type, post.Media.ImagePath, post.Media.VideoURL,
		post.PublishedAt, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, post *blog.Post) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, excerpt = $4, author_name = $5, status = $6,
		    media_type = $7, featured_image_path = $8, video_url = $9,
		    published_at = $10, updated_at = $11
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.AuthorName, post.Status,
		post.Media.Type, post.Media.ImagePath, post.Media.VideoURL,
		post.PublishedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, blog.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]blog.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]blog.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE status = 'published'
		ORDER BY published_at DESC`
	return r.queryPosts(ctx, query)
}

func (r *PostgresRepository) GetPublishedBySlug(ctx context.Context, loc locale.Locale, slug string) (*blog.Post, error) {
	// Matches the requested locale first, with the default locale as a
	// fallback for posts slugged before a translation existed.
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE status = 'published'
		  AND (slug->>$1 = $2 OR slug->>$3 = $2)
		LIMIT 1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, string(loc), slug, string(locale.Default)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, blog.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE blog_posts SET featured_image_path = $2 WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("failed to set blog post image path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *PostgresRepository) queryPosts(ctx context.Context, query string, args ...any) ([]blog.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []blog.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blog posts: %w", err)
	}

	return posts, nil
}
