package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
	"github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/internal/identity/usecase/command"
	"github.com/adielbeauty/storefront/internal/identity/usecase/query"
	"github.com/adielbeauty/storefront/internal/session"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// IdentityHandler handles sign-up, sign-in and sign-out
type IdentityHandler struct {
	signUpHandler  *command.SignUpHandler
	signInHandler  *command.SignInHandler
	profileHandler *query.GetProfileHandler
	metrics        *httpx.Metrics
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(repo domain.UserRepository, limiter domain.AttemptLimiter, metrics *httpx.Metrics) *IdentityHandler {
	return &IdentityHandler{
		signUpHandler:  command.NewSignUpHandler(repo),
		signInHandler:  command.NewSignInHandler(repo, limiter),
		profileHandler: query.NewGetProfileHandler(repo),
		metrics:        metrics,
	}
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Name     string         `json:"name"`
	Gender   catalog.Gender `json:"gender"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Create an account
// @Description Registers a customer and signs the browser session in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body signUpRequest true "Account details"
// @Success 201 {object} httpx.Response{data=command.AuthResult}
// @Failure 400 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /auth/register [post]
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req signUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.signUpHandler.Handle(r.Context(), command.SignUpCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Gender:   req.Gender,
	})
	if err != nil {
		h.respondIdentityError(w, r, err)
		return
	}

	s.Identity.Set(result.Identity)
	logger.Info(r.Context()).Uint("user_id", result.Identity.UserID).Msg("Customer registered")

	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{
		Success: true,
		Message: "Account created successfully! Welcome to Adiel Beauty.",
		Data:    result,
	})
}

// Login godoc
// @Summary Sign in
// @Description Authenticates a customer and signs the browser session in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body signInRequest true "Credentials"
// @Success 200 {object} httpx.Response{data=command.AuthResult}
// @Failure 401 {object} httpx.Response
// @Failure 429 {object} httpx.Response
// @Router /auth/login [post]
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	var req signInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.signInHandler.Handle(r.Context(), command.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondIdentityError(w, r, err)
		return
	}

	s.Identity.Set(result.Identity)

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Message: "Welcome back!",
		Data:    result,
	})
}

// Logout godoc
// @Summary Sign out
// @Description Clears the browser session's identity. Cart and wishlist are kept.
// @Description Bearer tokens issued before sign-out stop restoring this session; sign in again for a fresh one.
// @Tags Auth
// @Produce json
// @Success 200 {object} httpx.Response
// @Router /auth/logout [post]
func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	s.Identity.SignOut()
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Message: "Signed out",
	})
}

// Me godoc
// @Summary Current identity
// @Description Returns the signed-in customer, or null when anonymous
// @Tags Auth
// @Produce json
// @Success 200 {object} httpx.Response{data=domain.Identity}
// @Router /auth/me [get]
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromRequest(w, r)
	if !ok {
		return
	}

	who := s.Identity.Current()
	if who != nil {
		if profile := h.profileHandler.Handle(r.Context(), who.UserID); profile != nil {
			who = profile
		}
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success: true,
		Data:    who,
	})
}

func (h *IdentityHandler) respondIdentityError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrEmailInUse):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredential), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrTooManyRequests):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrMissingGender), errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword):
	default:
		status = http.StatusInternalServerError
		logger.Error(r.Context()).Err(err).Msg("Identity request failed")
	}

	httpx.RespondError(w, status, domain.UserMessage(err))
}

// RegisterRoutes registers the identity routes
func (h *IdentityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", h.metrics.Wrap("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", h.metrics.Wrap("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/logout", h.metrics.Wrap("/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/auth/me", h.metrics.Wrap("/auth/me", h.Me)).Methods("GET")
}
