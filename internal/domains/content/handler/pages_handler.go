package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowsite-backend/internal/domains/blog"
	"flowsite-backend/internal/domains/content"
	"flowsite-backend/internal/shared/middleware"
	"flowsite-backend/internal/shared/response"
	"flowsite-backend/pkg/logger"
)

// PagesHandler serves the composed public page payloads under
// /v1/pages/:locale. The locale middleware resolves the path segment
// before these run.
type PagesHandler struct {
	pages content.PagesService
	blog  blog.Service
}

func NewPagesHandler(pages content.PagesService, blogSvc blog.Service) *PagesHandler {
	return &PagesHandler{pages: pages, blog: blogSvc}
}

// ========== GET /v1/pages/:locale/home ==========
func (h *PagesHandler) Home(c *gin.Context) {
	page, err := h.pages.HomePage(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		logger.Error("home page compose failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "PAGES_HOME_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== GET /v1/pages/:locale/services ==========
func (h *PagesHandler) Services(c *gin.Context) {
	page, err := h.pages.ServicesPage(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		logger.Error("services page compose failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "PAGES_SERVICES_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== GET /v1/pages/:locale/projects ==========
func (h *PagesHandler) Projects(c *gin.Context) {
	page, err := h.pages.ProjectsPage(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		logger.Error("projects page compose failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "PAGES_PROJECTS_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== GET /v1/pages/:locale/blog ==========
func (h *PagesHandler) Blog(c *gin.Context) {
	loc := middleware.GetLocale(c)

	posts, err := h.blog.Published(c.Request.Context())
	if err != nil {
		logger.Error("blog page compose failed", err)
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "PAGES_BLOG_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, content.BlogPage{Posts: blog.LocalizePosts(posts, loc)})
}

// ========== GET /v1/pages/:locale/blog/:slug ==========
func (h *PagesHandler) BlogPost(c *gin.Context) {
	loc := middleware.GetLocale(c)

	post, err := h.blog.GetPublishedBySlug(c.Request.Context(), loc, c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, blog.GetHTTPStatusCode(err), "PAGES_POST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post.Localize(loc))
}

// ========== GET /v1/pages/:locale/about ==========
func (h *PagesHandler) About(c *gin.Context) {
	page, err := h.pages.AboutPage(c.Request.Context(), middleware.GetLocale(c))
	if err != nil {
		logger.Error("about page compose failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "PAGES_ABOUT_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ========== GET /v1/pages/:locale/team/:slug ==========
func (h *PagesHandler) TeamMember(c *gin.Context) {
	member, err := h.pages.TeamMemberDetail(c.Request.Context(), middleware.GetLocale(c), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "PAGES_TEAM_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, member)
}
