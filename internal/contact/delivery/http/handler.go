package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/contact"
	"github.com/adielbeauty/storefront/internal/contact/domain"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// ContactHandler handles the contact form and newsletter sign-up
type ContactHandler struct {
	service *contact.Service
	metrics *httpx.Metrics
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service *contact.Service, metrics *httpx.Metrics) *ContactHandler {
	return &ContactHandler{service: service, metrics: metrics}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// SubmitContact godoc
// @Summary Send a message to the shop
// @Description All five fields are required
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body domain.ContactForm true "Message"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 502 {object} httpx.Response
// @Router /api/contact [post]
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form domain.ContactForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SubmitContactForm(r.Context(), form); err != nil {
		switch {
		case errors.Is(err, domain.ErrIncompleteForm):
			httpx.RespondError(w, http.StatusBadRequest, "Please fill in all required fields")
		case errors.Is(err, domain.ErrInvalidEmail):
			httpx.RespondError(w, http.StatusBadRequest, "Please enter a valid email address.")
		default:
			httpx.RespondError(w, http.StatusBadGateway, domain.ContactFailureMessage)
		}
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Message: domain.ContactSuccessMessage,
	})
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body subscribeRequest true "Email"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /api/newsletter [post]
func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Subscribe(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			httpx.RespondError(w, http.StatusBadRequest, "Please enter a valid email address.")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Newsletter subscription failed")
		httpx.RespondError(w, http.StatusInternalServerError, domain.NewsletterFailureMessage)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Message: domain.NewsletterSuccessMessage,
	})
}

// RegisterRoutes registers the contact routes
func (h *ContactHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/contact", h.metrics.Wrap("/api/contact", h.SubmitContact)).Methods("POST")
	router.HandleFunc("/api/newsletter", h.metrics.Wrap("/api/newsletter", h.Subscribe)).Methods("POST")
}
