package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// GeneralServiceTarget is the target of a rating about the shop rather than a product
	GeneralServiceTarget = "general-service"
	// DefaultComment is stored when a rating is submitted without a comment
	DefaultComment = "General service rating"

	MinRating = 1
	MaxRating = 5
)

var (
	ErrNotAuthenticated = errors.New("review requires a signed-in customer")
	ErrNoRating         = errors.New("rating is required")
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// Review is one customer's rating of a product or of the shop
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TargetID  string    `json:"product_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// Stats summarizes all ratings
type Stats struct {
	AverageRating  float64 `json:"average_rating"`
	TotalRatings   int64   `json:"total_ratings"`
	TotalCustomers int64   `json:"total_customers"`
}

// ReviewRepository defines the contract for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	// ListRecent returns at most limit reviews, newest first
	ListRecent(ctx context.Context, limit int) ([]Review, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Acknowledgment is the thank-you shown after a rating is saved
func Acknowledgment(rating int) string {
	return fmt.Sprintf("Thank you for your %d-star rating! Your feedback has been saved and helps us improve our service.", rating)
}

// UserMessage maps a review error to the text shown to the customer
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in to submit a review"
	case errors.Is(err, ErrNoRating):
		return "Please select a rating"
	case errors.Is(err, ErrRatingOutOfRange):
		return "Rating must be between 1 and 5 stars"
	}
	return "Failed to submit rating. Please try again."
}
