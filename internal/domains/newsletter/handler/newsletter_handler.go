package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"flowsite-backend/internal/domains/newsletter"
	"flowsite-backend/internal/shared/locale"
	"flowsite-backend/internal/shared/response"
	"flowsite-backend/pkg/logger"
)

type NewsletterHandler struct {
	service newsletter.Service
}

func NewNewsletterHandler(svc newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{service: svc}
}

// ========== SUBSCRIBE: POST /v1/newsletter/subscribe ==========
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeReq
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

	headerLocale := locale.FromAcceptLanguage(c.GetHeader("Accept-Language"))

	if _, err := h.service.Subscribe(c.Request.Context(), &req, headerLocale); err != nil {
		logger.Error("newsletter subscribe failed", err)
		response.FormError(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	response.FormSuccess(c, "Subscribed successfully")
}

// ========== UNSUBSCRIBE: POST /v1/newsletter/unsubscribe ==========
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req newsletter.UnsubscribeReq
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

	if err := h.service.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, newsletter.ErrSubscriberNotFound) {
			response.FormError(c, http.StatusNotFound, "Subscriber not found")
			return
		}
		logger.Error("newsletter unsubscribe failed", err)
		response.FormError(c, http.StatusInternalServerError, "Failed to unsubscribe")
		return
	}

	response.FormSuccess(c, "Unsubscribed successfully")
}

// ========== ADMIN LIST: GET /v1/admin/subscribers?status= ==========
func (h *NewsletterHandler) AdminList(c *gin.Context) {
	var status *newsletter.Status
	if s := c.Query("status"); s != "" {
		st := newsletter.Status(s)
		if !st.Valid() {
			response.BadRequest(c, "status must be one of: active, unsubscribed")
			return
		}
		status = &st
	}

	subs, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		logger.Error("subscriber list failed", err)
		response.ErrorResponse(c, newsletter.GetHTTPStatusCode(err), "NEWSLETTER_LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscribers": subs})
}
