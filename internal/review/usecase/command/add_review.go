package command

import (
	"context"
	"strings"
	"time"

	"github.com/adielbeauty/storefront/internal/review/domain"
)

// AddReviewCommand represents the command to rate a product or the shop
type AddReviewCommand struct {
	UserID   uint
	TargetID string
	Rating   int
	Comment  string
}

// AddReviewHandler handles new ratings
type AddReviewHandler struct {
	repo domain.ReviewRepository
	now  func() time.Time
}

// NewAddReviewHandler creates a new add review handler
func NewAddReviewHandler(repo domain.ReviewRepository) *AddReviewHandler {
	return &AddReviewHandler{repo: repo, now: time.Now}
}

// Handle validates and stores the review. A zero user id means nobody is signed in.
func (h *AddReviewHandler) Handle(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrNotAuthenticated
	}
	if cmd.Rating == 0 {
		return nil, domain.ErrNoRating
	}
	if cmd.Rating < domain.MinRating || cmd.Rating > domain.MaxRating {
		return nil, domain.ErrRatingOutOfRange
	}

	target := strings.TrimSpace(cmd.TargetID)
	if target == "" {
		target = domain.GeneralServiceTarget
	}
	comment := strings.TrimSpace(cmd.Comment)
	if comment == "" {
		comment = domain.DefaultComment
	}

	review := &domain.Review{
		TargetID:  target,
		UserID:    cmd.UserID,
		Rating:    cmd.Rating,
		Comment:   comment,
		CreatedAt: h.now(),
	}
	if err := h.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
