package repository

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/adielbeauty/storefront/internal/contact/domain"
)

var tracer = otel.Tracer("contact-repository")

// GormSubscriberRepository implements SubscriberRepository using GORM
type GormSubscriberRepository struct {
	db *gorm.DB
}

// NewGormSubscriberRepository creates a new GORM subscriber repository
func NewGormSubscriberRepository(db *gorm.DB) *GormSubscriberRepository {
	return &GormSubscriberRepository{db: db}
}

// Subscribe inserts the address unless it is already present
func (r *GormSubscriberRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.Subscribe")
	defer span.End()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&domain.Subscriber{Email: email})
	if result.Error != nil {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, result.Error.Error())
		return false, fmt.Errorf("failed to save subscriber: %w", result.Error)
	}

	created := result.RowsAffected > 0
	span.SetAttributes(attribute.Bool("subscriber.new", created))
	return created, nil
}
