package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/internal/shared/response"
	"flowsite-backend/pkg/logger"
)

// maxImageSize caps editor uploads at 10 MiB.
const maxImageSize = 10 << 20

type PostHandler struct {
	service blog.Service
}

func NewPostHandler(svc blog.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// localizedText collects per-locale form fields like title_pt, title_en.
func localizedText(c *gin.Context, prefix string) locale.Text {
	t := locale.Text{}
	for _, l := range locale.All() {
		if v := strings.TrimSpace(c.PostForm(prefix + "_" + string(l))); v != "" {
			t[l] = v
		}
	}
	return t
}

func readImage(fh *multipart.FileHeader) (*blog.ImageUpload, error) {
	if fh.Size > maxImageSize {
		return nil, errors.New("image exceeds the 10MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		return nil, err
	}

	return &blog.ImageUpload{
		Data:        data,
		Ext:         strings.ToLower(filepath.Ext(fh.Filename)),
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

// parsePostInput assembles a PostInput from the multipart editor form.
func parsePostInput(c *gin.Context) (*blog.PostInput, error) {
	in := &blog.PostInput{
		Title:      localizedText(c, "title"),
		Excerpt:    localizedText(c, "excerpt"),
		Slug:       strings.TrimSpace(c.PostForm("slug")),
		AuthorName: strings.TrimSpace(c.PostForm("author_name")),
		Status:     blog.StatusDraft,
		MediaType:  blog.MediaImage,
		VideoURL:   strings.TrimSpace(c.PostForm("video_url")),
	}

	if s := c.PostForm("status"); s != "" {
		in.Status = blog.Status(s)
	}
	if m := c.PostForm("media_type"); m != "" {
		in.MediaType = blog.MediaType(m)
	}

	if fh, err := c.FormFile("image"); err == nil {
		img, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		in.Image = img
	}

	return in, nil
}

func respondInputError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BLOG_VALIDATION", "Validation failed", response.FieldErrors(verrs))
		return
	}
	response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_INVALID_INPUT", err.Error())
}

// ========== ADMIN LIST: GET /v1/admin/posts ==========
// Returns every post, drafts included, newest first.
func (h *PostHandler) AdminList(c *gin.Context) {
	posts, err := h.service.AdminList(c.Request.Context())
	if err != nil {
		logger.Error("post list failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

// ========== CREATE: POST /v1/admin/posts ==========
func (h *PostHandler) Create(c *gin.Context) {
	in, err := parsePostInput(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		respondInputError(c, err)
		return
	}

	post, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		logger.Error("post create failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// ========== UPDATE: PUT /v1/admin/posts/:id ==========
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	in, err := parsePostInput(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		respondInputError(c, err)
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		logger.Error("post update failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ========== TOGGLE: PATCH /v1/admin/posts/:id/status ==========
func (h *PostHandler) ToggleStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		logger.Error("post status toggle failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_TOGGLE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ========== DELETE: DELETE /v1/admin/posts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		logger.Error("post delete failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "BLOG_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
