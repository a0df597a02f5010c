package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/checkout"
	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// CheckoutHandler walks the session's checkout flow
type CheckoutHandler struct {
	metrics *httpx.Metrics
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(metrics *httpx.Metrics) *CheckoutHandler {
	return &CheckoutHandler{metrics: metrics}
}

type fulfillmentRequest struct {
	Method domain.FulfillmentMethod `json:"method" example:"whatsapp"`
}

type paymentRequest struct {
	Method domain.PaymentMethod `json:"method" example:"ecocash"`
}

// respondCheckoutError maps flow and dispatch errors onto the envelope
func respondCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNotAuthenticated) {
			status = http.StatusUnauthorized
		}
		httpx.RespondError(w, status, verr.Message())
	case errors.Is(err, checkout.ErrInvalidTransition):
		httpx.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrCancelled):
		httpx.RespondError(w, http.StatusConflict, "Checkout was cancelled")
	default:
		logger.Error(r.Context()).Err(err).Msg("Checkout failed")
		httpx.RespondError(w, http.StatusBadGateway, "Failed to process order. Please try again.")
	}
}

// GetCheckout godoc
// @Summary Checkout state
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=checkout.View}
// @Router /api/checkout [get]
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Checkout.View()})
}

// Begin godoc
// @Summary Open the checkout
// @Description Refused for an empty cart or an anonymous session
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=checkout.View}
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /api/checkout/begin [post]
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	if err := s.Checkout.Begin(r.Context()); err != nil {
		respondCheckoutError(w, r, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Checkout.View()})
}

// SelectFulfillment godoc
// @Summary Choose WhatsApp or email
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body fulfillmentRequest true "Fulfillment method"
// @Success 200 {object} httpx.Response{data=checkout.View}
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /api/checkout/fulfillment [post]
func (h *CheckoutHandler) SelectFulfillment(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req fulfillmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.Checkout.SelectFulfillment(req.Method); err != nil {
		respondCheckoutError(w, r, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Checkout.View()})
}

// SelectPayment godoc
// @Summary Choose a payment method
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body paymentRequest true "Payment method"
// @Success 200 {object} httpx.Response{data=checkout.View}
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /api/checkout/payment [post]
func (h *CheckoutHandler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req paymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.Checkout.SelectPayment(req.Method); err != nil {
		respondCheckoutError(w, r, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Checkout.View()})
}

// Submit godoc
// @Summary Place the order
// @Description Builds the order, waits the processing delay and returns the vendor hand-off link. The cart is cleared shortly after.
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=checkout.Result}
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Failure 502 {object} httpx.Response
// @Router /api/checkout/submit [post]
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	result, err := s.Checkout.Submit(r.Context())
	if err != nil {
		respondCheckoutError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Message: result.Handoff.Acknowledgment,
		Data:    result,
	})
}

// Back godoc
// @Summary Leave the checkout
// @Description Discards the selections and cancels a submission in progress. The cart is kept.
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} httpx.Response{data=checkout.View}
// @Failure 409 {object} httpx.Response
// @Router /api/checkout/back [post]
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}
	if err := s.Checkout.Back(); err != nil {
		respondCheckoutError(w, r, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: s.Checkout.View()})
}

// RegisterRoutes registers the checkout routes. Every route needs a signed-in customer.
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	route := func(path string, fn http.HandlerFunc) http.HandlerFunc {
		return h.metrics.Wrap(path, httpx.AuthMiddleware(fn))
	}

	router.HandleFunc("/api/checkout", route("/api/checkout", h.GetCheckout)).Methods("GET")
	router.HandleFunc("/api/checkout/begin", route("/api/checkout/begin", h.Begin)).Methods("POST")
	router.HandleFunc("/api/checkout/fulfillment", route("/api/checkout/fulfillment", h.SelectFulfillment)).Methods("POST")
	router.HandleFunc("/api/checkout/payment", route("/api/checkout/payment", h.SelectPayment)).Methods("POST")
	router.HandleFunc("/api/checkout/submit", route("/api/checkout/submit", h.Submit)).Methods("POST")
	router.HandleFunc("/api/checkout/back", route("/api/checkout/back", h.Back)).Methods("POST")
}
