package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adielbeauty/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// TracingRepository wraps a StateRepository with tracing
type TracingRepository struct {
	next domain.StateRepository
}

// NewTracingRepository creates a new repository with tracing
func NewTracingRepository(next domain.StateRepository) *TracingRepository {
	return &TracingRepository{next: next}
}

// LoadCart with tracing
func (r *TracingRepository) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.LoadCart")
	defer span.End()

	items, err := r.next.LoadCart(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.items", len(items)))
	return items, nil
}

// LoadWishlist with tracing
func (r *TracingRepository) LoadWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	ctx, span := tracer.Start(ctx, "repository.LoadWishlist")
	defer span.End()

	items, err := r.next.LoadWishlist(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("wishlist.items", len(items)))
	return items, nil
}

// SaveCart with tracing
func (r *TracingRepository) SaveCart(ctx context.Context, items []domain.CartItem) error {
	ctx, span := tracer.Start(ctx, "repository.SaveCart",
		trace.WithAttributes(attribute.Int("cart.items", len(items))),
	)
	defer span.End()

	if err := r.next.SaveCart(ctx, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// SaveWishlist with tracing
func (r *TracingRepository) SaveWishlist(ctx context.Context, items []domain.WishlistItem) error {
	ctx, span := tracer.Start(ctx, "repository.SaveWishlist",
		trace.WithAttributes(attribute.Int("wishlist.items", len(items))),
	)
	defer span.End()

	if err := r.next.SaveWishlist(ctx, items); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
