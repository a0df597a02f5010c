package domain

import (
	"context"
	"time"

	"gorm.io/gorm"

	catalog "github.com/adielbeauty/storefront/internal/catalog/domain"
)

// User represents a registered customer
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Name      string         `json:"name" gorm:"not null"`
	Gender    catalog.Gender `json:"gender" gorm:"not null;default:'unisex'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "customers"
}

// Identity is the signed-in customer as the rest of the storefront sees it
type Identity struct {
	UserID uint           `json:"user_id"`
	Email  string         `json:"email"`
	Name   string         `json:"name"`
	Gender catalog.Gender `json:"gender"`
}

// Identity returns the public view of the user
func (u *User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Gender: u.Gender,
	}
}

// UserRepository defines the contract for customer data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// AttemptLimiter bounds failed sign-in attempts per key
type AttemptLimiter interface {
	// Allow reports whether another attempt may be made
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts a failed attempt
	RecordFailure(ctx context.Context, key string) error
	// Reset forgets the failures after a successful sign-in
	Reset(ctx context.Context, key string) error
}
