package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adielbeauty/storefront/internal/review/domain"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a review
func (r *GormReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListRecent returns the newest reviews first
func (r *GormReviewRepository) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Stats aggregates every rating in one query
func (r *GormReviewRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings, COUNT(DISTINCT user_id) AS total_customers").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute review stats: %w", err)
	}
	return &stats, nil
}
