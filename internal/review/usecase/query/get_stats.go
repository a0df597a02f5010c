package query

import (
	"context"
	"fmt"
	"math"

	"github.com/adielbeauty/storefront/internal/review/domain"
)

// GetStatsHandler handles the rating stats banner query
type GetStatsHandler struct {
	repo domain.ReviewRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ReviewRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query. The average is rounded to one decimal.
func (h *GetStatsHandler) Handle(ctx context.Context) (*domain.Stats, error) {
	stats, err := h.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get review stats: %w", err)
	}
	if stats.TotalRatings == 0 {
		stats.AverageRating = 0
	}
	stats.AverageRating = math.Round(stats.AverageRating*10) / 10
	return stats, nil
}
