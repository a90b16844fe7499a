package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"flowsite-backend/internal/domains/contact"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/internal/shared/response"
	"flowsite-backend/pkg/logger"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{service: svc}
}

// ========== SUBMIT: POST /v1/contact ==========
// Public form endpoint. Validation failures enumerate every failing
// field; a store failure is a plain 500 with no retry.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FormError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.FormValidationFailed(c, response.FieldErrors(verrs))
			return
		}
		response.FormError(c, http.StatusBadRequest, err.Error())
		return
	}

	loc := locale.FromAcceptLanguage(c.GetHeader("Accept-Language"))

	if _, err := h.service.Submit(c.Request.Context(), &req, loc); err != nil {
		logger.Error("contact submit failed", err)
		response.FormError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	response.FormSuccess(c, "Message sent successfully")
}

// ========== ADMIN LIST: GET /v1/admin/messages?status= ==========
func (h *ContactHandler) AdminList(c *gin.Context) {
	var status *contact.Status
	if s := c.Query("status"); s != "" {
		st := contact.Status(s)
		if !st.Valid() {
			response.BadRequest(c, "status must be one of: new, read, archived")
			return
		}
		status = &st
	}

	messages, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		logger.Error("contact list failed", err)
		response.ErrorResponse(c, contact.GetHTTPStatusCode(err), "CONTACT_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// ========== ADMIN STATUS: PATCH /v1/admin/messages/:id/status ==========
func (h *ContactHandler) AdminUpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	var req contact.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.service.UpdateStatus(c.Request.Context(), id, contact.Status(req.Status))
	if err != nil {
		response.ErrorResponse(c, contact.GetHTTPStatusCode(err), "CONTACT_STATUS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, msg)
}
