package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/internal/shared/utils"
	"flowsite-backend/pkg/cache"
	"flowsite-backend/pkg/logger"
)

const (
	publishedListKey = "blog:published"
	pagesBlogPattern = "pages:blog:*"
	listTTL          = 5 * time.Minute
)

type postService struct {
	repo   blog.Repository
	assets blog.AssetStore
	cache  cache.Cache
}

func NewPostService(repo blog.Repository, assets blog.AssetStore, c cache.Cache) blog.Service {
	return &postService{repo: repo, assets: assets, cache: c}
}

// deriveSlug normalizes an explicit slug or derives one from the
// default-locale title. The same derivation runs either way, so a
// hand-edited slug obeys the same charset rules.
func deriveSlug(in *blog.PostInput) string {
	if in.Slug != "" {
		return utils.GenerateSlug(in.Slug)
	}
	return utils.GenerateSlug(in.Title.Get(locale.Default))
}

// slugText spreads one slug over every supported locale so lookups in
// any locale resolve.
func slugText(slug string) locale.Text {
	t := locale.Text{}
	for _, l := range locale.All() {
		t[l] = slug
	}
	return t
}

func mediaFromInput(in *blog.PostInput, existingImagePath string) blog.Media {
	if in.MediaType == blog.MediaVideo {
		return blog.VideoMedia(in.VideoURL)
	}
	return blog.ImageMedia(existingImagePath)
}

func (s *postService) Create(ctx context.Context, in *blog.PostInput) (*blog.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", blog.ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	post := &blog.Post{
		ID:         uuid.New(),
		Title:      in.Title,
		Slug:       slugText(deriveSlug(in)),
		Excerpt:    in.Excerpt,
		AuthorName: in.AuthorName,
		Status:     in.Status,
		Media:      mediaFromInput(in, ""),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if post.Status == blog.StatusPublished {
		post.PublishedAt = &now
	}

	// Two-step attach: the row exists before the asset, so the storage
	// key can carry the row id.
	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if in.MediaType == blog.MediaImage && in.Image != nil {
		s.attachImage(ctx, post, in.Image)
	}

	s.invalidate(ctx)
	return post, nil
}

// attachImage uploads the file under blog/{id}.{ext} and writes the
// public URL back to the row. Failures leave the post without an image
// rather than failing the save.
func (s *postService) attachImage(ctx context.Context, post *blog.Post, img *blog.ImageUpload) {
	key := fmt.Sprintf("blog/%s%s", post.ID, img.Ext)

	url, err := s.assets.Upload(ctx, key, img.Data, img.ContentType)
	if err != nil {
		logger.Error("post image upload failed", err)
		return
	}

	if err := s.repo.SetImagePath(ctx, post.ID, url); err != nil {
		logger.Error("post image path update failed", err)
		return
	}
	post.Media.ImagePath = url
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, in *blog.PostInput) (*blog.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", blog.ErrInvalidInput, err)
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Excerpt = in.Excerpt
	post.Slug = slugText(deriveSlug(in))
	post.AuthorName = in.AuthorName
	post.Media = mediaFromInput(in, post.Media.ImagePath)
	post.UpdatedAt = time.Now().UTC()

	// PublishedAt is set once on the first transition into published;
	// an already-stamped post keeps its original timestamp here.
	if in.Status == blog.StatusPublished && post.PublishedAt == nil {
		now := post.UpdatedAt
		post.PublishedAt = &now
	}
	post.Status = in.Status

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if in.MediaType == blog.MediaImage && in.Image != nil {
		s.attachImage(ctx, post, in.Image)
	}

	s.invalidate(ctx)
	return post, nil
}

func (s *postService) ToggleStatus(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if post.Status == blog.StatusPublished {
		// unpublish keeps the original publication timestamp
		post.Status = blog.StatusDraft
	} else {
		post.Status = blog.StatusPublished
		post.PublishedAt = &now
	}
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to toggle post status: %w", err)
	}

	s.invalidate(ctx)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	// Asset removal is best-effort and runs first; the prefix is the
	// deterministic per-row key, so no extension guessing is involved.
	if err := s.assets.DeleteByPrefix(ctx, fmt.Sprintf("blog/%s.", id)); err != nil {
		logger.Error("post asset cleanup failed", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *postService) AdminList(ctx context.Context) ([]blog.Post, error) {
	return s.repo.List(ctx)
}

func (s *postService) Published(ctx context.Context) ([]blog.Post, error) {
	var posts []blog.Post
	if found, err := s.cache.Get(ctx, publishedListKey, &posts); err != nil {
		logger.Error("published list cache read failed", err)
	} else if found {
		return posts, nil
	}

	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, publishedListKey, posts, listTTL); err != nil {
		logger.Error("published list cache write failed", err)
	}
	return posts, nil
}

func (s *postService) GetPublishedBySlug(ctx context.Context, loc locale.Locale, slug string) (*blog.Post, error) {
	return s.repo.GetPublishedBySlug(ctx, loc, slug)
}

func (s *postService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, publishedListKey); err != nil {
		logger.Error("published list cache invalidation failed", err)
	}
	if err := s.cache.DeletePattern(ctx, pagesBlogPattern); err != nil {
		logger.Error("blog pages cache invalidation failed", err)
	}
}
