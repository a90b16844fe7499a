package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"flowsite-backend/internal/domains/content"
	"flowsite-backend/internal/shared/response"
	"flowsite-backend/pkg/logger"
)

type TeamAdminHandler struct {
	service content.PagesService
}

func NewTeamAdminHandler(svc content.PagesService) *TeamAdminHandler {
	return &TeamAdminHandler{service: svc}
}

func respondTeamInputError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "TEAM_VALIDATION", "Validation failed", response.FieldErrors(verrs))
		return
	}
	response.ErrorResponse(c, content.GetHTTPStatusCode(err), "TEAM_INVALID_INPUT", err.Error())
}

// ========== LIST: GET /v1/admin/team ==========
func (h *TeamAdminHandler) List(c *gin.Context) {
	members, err := h.service.ListTeam(c.Request.Context())
	if err != nil {
		logger.Error("team list failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "TEAM_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"members": members})
}

// ========== CREATE: POST /v1/admin/team ==========
func (h *TeamAdminHandler) Create(c *gin.Context) {
	var req content.TeamMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondTeamInputError(c, err)
		return
	}

	member, err := h.service.CreateTeamMember(c.Request.Context(), &req)
	if err != nil {
		logger.Error("team member create failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "TEAM_CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// ========== UPDATE: PUT /v1/admin/team/:id ==========
func (h *TeamAdminHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	var req content.TeamMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondTeamInputError(c, err)
		return
	}

	member, err := h.service.UpdateTeamMember(c.Request.Context(), id, &req)
	if err != nil {
		logger.Error("team member update failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "TEAM_UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, member)
}

// ========== DELETE: DELETE /v1/admin/team/:id ==========
func (h *TeamAdminHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	if err := h.service.DeleteTeamMember(c.Request.Context(), id); err != nil {
		logger.Error("team member delete failed", err)
		response.ErrorResponse(c, content.GetHTTPStatusCode(err), "TEAM_DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
