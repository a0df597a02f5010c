package query

import (
	"context"
	"fmt"

	"github.com/adielbeauty/storefront/internal/review/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListReviewsQuery represents the query to list recent reviews
type ListReviewsQuery struct {
	Limit int
}

// ListReviewsHandler handles list reviews query
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle returns the newest reviews first
func (h *ListReviewsHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]domain.Review, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	reviews, err := h.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
