package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adielbeauty/storefront/internal/review/domain"
)

var tracer = otel.Tracer("review-repository")

// TracingReviewRepository wraps a ReviewRepository with tracing
type TracingReviewRepository struct {
	next domain.ReviewRepository
}

// NewTracingReviewRepository creates a new repository with tracing
func NewTracingReviewRepository(next domain.ReviewRepository) *TracingReviewRepository {
	return &TracingReviewRepository{next: next}
}

// Create with tracing
func (r *TracingReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	ctx, span := tracer.Start(ctx, "repository.CreateReview",
		trace.WithAttributes(
			attribute.String("review.target", review.TargetID),
			attribute.Int("review.rating", review.Rating),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, review); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// ListRecent with tracing
func (r *TracingReviewRepository) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	ctx, span := tracer.Start(ctx, "repository.ListRecentReviews",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	reviews, err := r.next.ListRecent(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("reviews.count", len(reviews)))
	return reviews, nil
}

// Stats with tracing
func (r *TracingReviewRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, span := tracer.Start(ctx, "repository.ReviewStats")
	defer span.End()

	stats, err := r.next.Stats(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return stats, nil
}
