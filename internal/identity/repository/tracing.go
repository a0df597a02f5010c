package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adielbeauty/storefront/internal/identity/domain"
)

var tracer = otel.Tracer("identity-repository")

// TracingUserRepository wraps a UserRepository with tracing
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository creates a new repository with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

// Create with tracing
func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.CreateUser",
		trace.WithAttributes(attribute.String("user.gender", string(user.Gender))),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByEmail with tracing
func (r *TracingUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindUserByEmail")
	defer span.End()

	user, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return user, nil
}
