package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adielbeauty/storefront/internal/review/domain"
	"github.com/adielbeauty/storefront/internal/review/usecase/command"
	"github.com/adielbeauty/storefront/internal/review/usecase/query"
	"github.com/adielbeauty/storefront/pkg/httpx"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// ReviewHandler handles HTTP requests for ratings
type ReviewHandler struct {
	addHandler   *command.AddReviewHandler
	listHandler  *query.ListReviewsHandler
	statsHandler *query.GetStatsHandler
	metrics      *httpx.Metrics
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(repo domain.ReviewRepository, metrics *httpx.Metrics) *ReviewHandler {
	return &ReviewHandler{
		addHandler:   command.NewAddReviewHandler(repo),
		listHandler:  query.NewListReviewsHandler(repo),
		statsHandler: query.NewGetStatsHandler(repo),
		metrics:      metrics,
	}
}

type addReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// AddReview godoc
// @Summary Rate the shop or a product
// @Description An empty product_id rates the shop's general service
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body addReviewRequest true "Rating"
// @Success 201 {object} httpx.Response{data=domain.Review}
// @Failure 400 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /api/reviews [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	var userID uint
	if claims, ok := httpx.ClaimsFromContext(r.Context()); ok {
		userID = claims.UserID
	}

	var req addReviewRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.addHandler.Handle(r.Context(), command.AddReviewCommand{
		UserID:   userID,
		TargetID: req.ProductID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrNoRating), errors.Is(err, domain.ErrRatingOutOfRange):
		default:
			status = http.StatusInternalServerError
			logger.Error(r.Context()).Err(err).Msg("Failed to add review")
		}
		httpx.RespondError(w, status, domain.UserMessage(err))
		return
	}

	logger.Info(r.Context()).
		Uint("user_id", review.UserID).
		Str("target", review.TargetID).
		Int("rating", review.Rating).
		Msg("Review added")

	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{
		Success: true,
		Message: domain.Acknowledgment(review.Rating),
		Data:    review,
	})
}

// ListReviews godoc
// @Summary Recent reviews
// @Tags Reviews
// @Produce json
// @Param limit query int false "Maximum number of reviews" default(20)
// @Success 200 {object} httpx.Response{data=[]domain.Review}
// @Router /api/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	reviews, err := h.listHandler.Handle(r.Context(), query.ListReviewsQuery{Limit: limit})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list reviews")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: reviews})
}

// GetStats godoc
// @Summary Rating stats
// @Description Average rating, number of ratings and number of distinct customers
// @Tags Reviews
// @Produce json
// @Success 200 {object} httpx.Response{data=domain.Stats}
// @Router /api/reviews/stats [get]
func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load review stats")
		httpx.RespondError(w, http.StatusInternalServerError, "Failed to load rating stats")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{Success: true, Data: stats})
}

// RegisterRoutes registers the review routes
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reviews", h.metrics.Wrap("/api/reviews", httpx.AuthMiddleware(h.AddReview))).Methods("POST")
	router.HandleFunc("/api/reviews", h.metrics.Wrap("/api/reviews", h.ListReviews)).Methods("GET")
	router.HandleFunc("/api/reviews/stats", h.metrics.Wrap("/api/reviews/stats", h.GetStats)).Methods("GET")
}
