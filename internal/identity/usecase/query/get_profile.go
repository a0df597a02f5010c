package query

import (
	"context"

	"github.com/adielbeauty/storefront/internal/identity/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// GetProfileHandler prefetches a customer's profile
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle returns the profile, or nil when it cannot be loaded.
// A failed prefetch is logged and never surfaced.
func (h *GetProfileHandler) Handle(ctx context.Context, userID uint) *domain.Identity {
	user, err := h.repo.FindByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", userID).Msg("Could not load user profile")
		return nil
	}
	id := user.Identity()
	return &id
}
