package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
)

type fakeRepo struct {
	posts map[uuid.UUID]*blog.Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[uuid.UUID]*blog.Post{}}
}

func (f *fakeRepo) Insert(_ context.Context, post *blog.Post) error {
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, post *blog.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return blog.ErrPostNotFound
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*blog.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return blog.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]blog.Post, error) {
	out := []blog.Post{}
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) ListPublished(_ context.Context) ([]blog.Post, error) {
	out := []blog.Post{}
	for _, p := range f.posts {
		if p.Status == blog.StatusPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetPublishedBySlug(_ context.Context, loc locale.Locale, slug string) (*blog.Post, error) {
	for _, p := range f.posts {
		if p.Status != blog.StatusPublished {
			continue
		}
		if p.Slug.Get(loc) == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, blog.ErrPostNotFound
}

func (f *fakeRepo) SetImagePath(_ context.Context, id uuid.UUID, path string) error {
	p, ok := f.posts[id]
	if !ok {
		return blog.ErrPostNotFound
	}
	p.Media.ImagePath = path
	return nil
}

type fakeAssets struct {
	uploads        map[string][]byte
	deletedPrefix  string
	failUpload     bool
	failDeletePref bool
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{uploads: map[string][]byte{}}
}

func (f *fakeAssets) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.failUpload {
		return "", errors.New("storage down")
	}
	f.uploads[key] = data
	return "https://cdn.test/" + key, nil
}

func (f *fakeAssets) DeleteByPrefix(_ context.Context, prefix string) error {
	f.deletedPrefix = prefix
	if f.failDeletePref {
		return errors.New("storage down")
	}
	for key := range f.uploads {
		if strings.HasPrefix(key, prefix) {
			delete(f.uploads, key)
		}
	}
	return nil
}

type fakeCache struct {
	deleted  []string
	patterns []string
}

func (f *fakeCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (f *fakeCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}
func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}
func (f *fakeCache) DeletePattern(_ context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return nil
}
func (f *fakeCache) Ping(context.Context) error { return nil }

func newTestService() (blog.Service, *fakeRepo, *fakeAssets, *fakeCache) {
	repo := newFakeRepo()
	assets := newFakeAssets()
	c := &fakeCache{}
	return NewPostService(repo, assets, c), repo, assets, c
}

func draftInput() *blog.PostInput {
	return &blog.PostInput{
		Title:      locale.Text{locale.PT: "Novo Projeto Incrível!"},
		Excerpt:    locale.Text{locale.PT: "Um resumo."},
		AuthorName: "Rita",
		Status:     blog.StatusDraft,
		MediaType:  blog.MediaImage,
	}
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc, _, _, _ := newTestService()

	post, err := svc.Create(context.Background(), draftInput())
	require.NoError(t, err)

	assert.Equal(t, "novo-projeto-incrivel", post.Slug.Get(locale.PT))
	assert.Equal(t, "novo-projeto-incrivel", post.Slug.Get(locale.EN))
	assert.Nil(t, post.PublishedAt)
}

func TestCreateNormalizesExplicitSlug(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := draftInput()
	in.Slug = "  Café & Co.  "

	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "cafe-co", post.Slug.Get(locale.PT))
}

func TestCreatePublishedStampsTimestamp(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := draftInput()
	in.Status = blog.StatusPublished

	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
}

func TestUpdatePublishStampIsSetOnce(t *testing.T) {
	svc, _, _, _ := newTestService()

	post, err := svc.Create(context.Background(), draftInput())
	require.NoError(t, err)

	in := draftInput()
	in.Status = blog.StatusPublished
	published, err := svc.Update(context.Background(), post.ID, in)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// back to draft and published again through Update: the original
	// timestamp survives
	in.Status = blog.StatusDraft
	drafted, err := svc.Update(context.Background(), post.ID, in)
	require.NoError(t, err)
	require.NotNil(t, drafted.PublishedAt)
	assert.Equal(t, first, *drafted.PublishedAt)

	in.Status = blog.StatusPublished
	again, err := svc.Update(context.Background(), post.ID, in)
	require.NoError(t, err)
	assert.Equal(t, first, *again.PublishedAt)
}

func TestTogglePublishAlwaysRestamps(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := draftInput()
	in.Status = blog.StatusPublished
	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	first := *post.PublishedAt

	unpublished, err := svc.ToggleStatus(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.StatusDraft, unpublished.Status)
	require.NotNil(t, unpublished.PublishedAt)
	assert.Equal(t, first, *unpublished.PublishedAt)

	time.Sleep(5 * time.Millisecond)

	republished, err := svc.ToggleStatus(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.StatusPublished, republished.Status)
	assert.True(t, republished.PublishedAt.After(first))
}

func TestCreateAttachesImage(t *testing.T) {
	svc, repo, assets, _ := newTestService()

	in := draftInput()
	in.Image = &blog.ImageUpload{Data: []byte("png"), Ext: ".png", ContentType: "image/png"}

	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	key := "blog/" + post.ID.String() + ".png"
	assert.Contains(t, assets.uploads, key)
	assert.Equal(t, "https://cdn.test/"+key, post.Media.ImagePath)

	stored, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Media.ImagePath, stored.Media.ImagePath)
}

func TestCreateSurvivesUploadFailure(t *testing.T) {
	svc, repo, assets, _ := newTestService()
	assets.failUpload = true

	in := draftInput()
	in.Image = &blog.ImageUpload{Data: []byte("png"), Ext: ".png", ContentType: "image/png"}

	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, post.Media.ImagePath)

	stored, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Media.ImagePath)
}

func TestUpdateSwitchToVideoClearsImage(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := draftInput()
	in.Image = &blog.ImageUpload{Data: []byte("png"), Ext: ".png", ContentType: "image/png"}
	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, post.Media.ImagePath)

	vin := draftInput()
	vin.MediaType = blog.MediaVideo
	vin.VideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

	updated, err := svc.Update(context.Background(), post.ID, vin)
	require.NoError(t, err)
	assert.Equal(t, blog.MediaVideo, updated.Media.Type)
	assert.Empty(t, updated.Media.ImagePath)
	assert.Equal(t, vin.VideoURL, updated.Media.VideoURL)
}

func TestDeleteRemovesAssetsByPrefix(t *testing.T) {
	svc, repo, assets, _ := newTestService()

	in := draftInput()
	in.Image = &blog.ImageUpload{Data: []byte("png"), Ext: ".png", ContentType: "image/png"}
	post, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), post.ID))

	assert.Equal(t, "blog/"+post.ID.String()+".", assets.deletedPrefix)
	assert.Empty(t, assets.uploads)
	_, err = repo.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestDeleteSurvivesAssetFailure(t *testing.T) {
	svc, repo, assets, _ := newTestService()
	assets.failDeletePref = true

	post, err := svc.Create(context.Background(), draftInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), post.ID))
	_, err = repo.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestMutationsInvalidateCaches(t *testing.T) {
	svc, _, _, c := newTestService()

	_, err := svc.Create(context.Background(), draftInput())
	require.NoError(t, err)

	assert.Contains(t, c.deleted, "blog:published")
	assert.Contains(t, c.patterns, "pages:blog:*")
}

func TestCreateRejectsVideoWithoutURL(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := draftInput()
	in.MediaType = blog.MediaVideo

	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, blog.ErrInvalidInput)
}
