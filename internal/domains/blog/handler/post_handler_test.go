package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
)

type fakeService struct {
	lastInput *blog.PostInput
	toggled   uuid.UUID
}

func (f *fakeService) Create(_ context.Context, in *blog.PostInput) (*blog.Post, error) {
	f.lastInput = in
	return &blog.Post{ID: uuid.New(), Title: in.Title, Status: in.Status}, nil
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, in *blog.PostInput) (*blog.Post, error) {
	f.lastInput = in
	return &blog.Post{ID: id, Title: in.Title, Status: in.Status}, nil
}

func (f *fakeService) ToggleStatus(_ context.Context, id uuid.UUID) (*blog.Post, error) {
	f.toggled = id
	return &blog.Post{ID: id, Status: blog.StatusPublished}, nil
}

func (f *fakeService) Delete(context.Context, uuid.UUID) error       { return nil }
func (f *fakeService) AdminList(context.Context) ([]blog.Post, error) { return nil, nil }
func (f *fakeService) Published(context.Context) ([]blog.Post, error) { return nil, nil }
func (f *fakeService) GetPublishedBySlug(context.Context, locale.Locale, string) (*blog.Post, error) {
	return nil, blog.ErrPostNotFound
}

func newTestRouter(svc blog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	router := gin.New()
	router.POST("/admin/posts", h.Create)
	router.PATCH("/admin/posts/:id/status", h.ToggleStatus)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateParsesMultipartForm(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"title_pt":    "Novo Projeto",
		"title_en":    "New Project",
		"excerpt_pt":  "Resumo",
		"author_name": "Rita",
		"status":      "published",
		"media_type":  "image",
	}, "cover.PNG")

	req := httptest.NewRequest(http.MethodPost, "/admin/posts", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastInput)

	in := svc.lastInput
	assert.Equal(t, "Novo Projeto", in.Title.Get(locale.PT))
	assert.Equal(t, "New Project", in.Title.Get(locale.EN))
	assert.Equal(t, "Resumo", in.Excerpt.Get(locale.PT))
	assert.Equal(t, blog.StatusPublished, in.Status)
	assert.Equal(t, blog.MediaImage, in.MediaType)
	require.NotNil(t, in.Image)
	assert.Equal(t, ".png", in.Image.Ext)
	assert.Equal(t, []byte("fake image bytes"), in.Image.Data)
}

func TestCreateDefaultsToDraftImagePost(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"title_pt": "Rascunho"}, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/posts", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, blog.StatusDraft, svc.lastInput.Status)
	assert.Equal(t, blog.MediaImage, svc.lastInput.MediaType)
	assert.Nil(t, svc.lastInput.Image)
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"status": "draft"}, "")

	req := httptest.NewRequest(http.MethodPost, "/admin/posts", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastInput)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "BLOG_VALIDATION", resp.Error.Code)
}

func TestToggleStatusRejectsBadID(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/admin/posts/not-a-uuid/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uuid.Nil, svc.toggled)
}
