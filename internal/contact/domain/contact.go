package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrIncompleteForm = errors.New("contact form is incomplete")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrRelayFailed    = errors.New("mail relay failed")
)

const (
	ContactSuccessMessage    = "Thank you! Your message has been sent successfully. We'll get back to you soon!"
	ContactFailureMessage    = "Sorry, there was an error sending your message. Please try again or contact us directly."
	NewsletterSuccessMessage = "Thank you for subscribing! Welcome to the Adiel Beauty family!"
	NewsletterFailureMessage = "Sorry, there was an error. Please try again."
)

// ContactForm is a message from a visitor to the shop
type ContactForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// FullName joins first and last name
func (f ContactForm) FullName() string {
	return f.FirstName + " " + f.LastName
}

// Subscriber is a newsletter sign-up
type Subscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}

// Mailer sends a templated message to the vendor
type Mailer interface {
	Send(ctx context.Context, params map[string]string) error
}

// SubscriberRepository stores newsletter subscribers
type SubscriberRepository interface {
	// Subscribe records the address and reports whether it was new
	Subscribe(ctx context.Context, email string) (bool, error)
}
