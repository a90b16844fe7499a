package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowsite-backend/internal/domains/contact"
	"flowsite-backend/internal/domains/contact/service"
	"flowsite-backend/internal/shared/locale"
)

// fakeRepo stores messages in memory; failWith forces Insert errors.
type fakeRepo struct {
	messages []contact.Message
	failWith error
}

func (f *fakeRepo) Insert(_ context.Context, msg *contact.Message) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeRepo) List(_ context.Context, status *contact.Status) ([]contact.Message, error) {
	if status == nil {
		return f.messages, nil
	}
	out := []contact.Message{}
	for _, m := range f.messages {
		if m.Status == *status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status contact.Status) (*contact.Message, error) {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Status = status
			return &f.messages[i], nil
		}
	}
	return nil, contact.ErrMessageNotFound
}

func newTestRouter(repo *fakeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(service.NewContactService(repo, nil))

	r := gin.New()
	r.POST("/api/v1/contact", h.Submit)
	r.GET("/api/v1/admin/messages", h.AdminList)
	r.PATCH("/api/v1/admin/messages/:id/status", h.AdminUpdateStatus)
	return r
}

func postJSON(r *gin.Engine, path string, body map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitStoresMessage(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	w := postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "Maria Silva",
		"email":   "maria@example.com",
		"message": "I would like a quote for a brand video.",
		"consent": true,
	}, map[string]string{"Accept-Language": "en-US,en;q=0.9"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	require.Len(t, repo.messages, 1)
	msg := repo.messages[0]
	assert.Equal(t, contact.StatusNew, msg.Status)
	assert.Equal(t, locale.EN, msg.Locale)
	assert.True(t, msg.Consent)
	assert.False(t, msg.ConsentAt.IsZero())
}

func TestSubmitWithoutConsentRejected(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	w := postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "Maria Silva",
		"email":   "maria@example.com",
		"message": "I would like a quote for a brand video.",
		"consent": false,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.messages)

	var body struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "consent", body.Details[0].Field)
}

func TestSubmitEnumeratesAllFailures(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	// every field invalid at once
	w := postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "A",
		"email":   "not-an-email",
		"message": "short",
		"consent": false,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.messages)

	var body struct {
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	fields := map[string]bool{}
	for _, d := range body.Details {
		fields[d.Field] = true
	}
	assert.Len(t, fields, 4)
	for _, f := range []string{"name", "email", "message", "consent"} {
		assert.True(t, fields[f], "missing detail for %s", f)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &fakeRepo{failWith: errors.New("connection refused")}
	r := newTestRouter(repo)

	w := postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "Maria Silva",
		"email":   "maria@example.com",
		"message": "I would like a quote for a brand video.",
		"consent": true,
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestSubmitDefaultsLocale(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	w := postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "Jean Dupont",
		"email":   "jean@example.com",
		"message": "Bonjour, je voudrais un devis pour un projet.",
		"consent": true,
	}, map[string]string{"Accept-Language": "de-DE,de;q=0.9"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, locale.Default, repo.messages[0].Locale)
}

func TestAdminUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	postJSON(r, "/api/v1/contact", map[string]any{
		"name":    "Maria Silva",
		"email":   "maria@example.com",
		"message": "I would like a quote for a brand video.",
		"consent": true,
	}, nil)
	require.Len(t, repo.messages, 1)

	id := repo.messages[0].ID
	raw, _ := json.Marshal(map[string]string{"status": "read"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/messages/"+id.String()+"/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contact.StatusRead, repo.messages[0].Status)
}

func TestAdminUpdateStatusNotFound(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	raw, _ := json.Marshal(map[string]string{"status": "read"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/messages/"+uuid.NewString()+"/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
