// Package contact relays the storefront's contact form to the vendor and keeps
// the newsletter subscriber list.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/adielbeauty/storefront/internal/contact/domain"
	"github.com/adielbeauty/storefront/pkg/email"
	"github.com/adielbeauty/storefront/pkg/logger"
)

var contactMessages = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_contact_messages_total",
		Help: "Total number of contact form submissions by outcome",
	},
	[]string{"status"},
)

// Recipient is who contact messages are addressed to
type Recipient struct {
	Name  string
	Email string
}

// Service handles contact messages and newsletter sign-ups
type Service struct {
	mailer      domain.Mailer
	subscribers domain.SubscriberRepository
	recipient   Recipient
}

// NewService creates a new contact service
func NewService(mailer domain.Mailer, subscribers domain.SubscriberRepository, recipient Recipient) *Service {
	return &Service{
		mailer:      mailer,
		subscribers: subscribers,
		recipient:   recipient,
	}
}

// SubmitContactForm validates the form and relays it to the vendor
func (s *Service) SubmitContactForm(ctx context.Context, form domain.ContactForm) error {
	form = trimForm(form)
	if form.FirstName == "" || form.LastName == "" || form.Email == "" || form.Phone == "" || form.Message == "" {
		return domain.ErrIncompleteForm
	}
	if !email.Valid(email.Normalize(form.Email)) {
		return domain.ErrInvalidEmail
	}

	err := s.mailer.Send(ctx, map[string]string{
		"from_name":  form.FullName(),
		"from_email": form.Email,
		"from_phone": form.Phone,
		"message":    form.Message,
		"to_name":    s.recipient.Name,
		"to_email":   s.recipient.Email,
	})
	if err != nil {
		contactMessages.WithLabelValues("failed").Inc()
		logger.Error(ctx).Err(err).Msg("Error sending contact message")
		return err
	}

	contactMessages.WithLabelValues("sent").Inc()
	logger.Info(ctx).Str("from_email", form.Email).Msg("Contact message sent")
	return nil
}

func trimForm(f domain.ContactForm) domain.ContactForm {
	return domain.ContactForm{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Phone:     strings.TrimSpace(f.Phone),
		Message:   strings.TrimSpace(f.Message),
	}
}

// Subscribe records a newsletter address. Subscribing twice is not an error.
func (s *Service) Subscribe(ctx context.Context, address string) error {
	address = email.Normalize(address)
	if !email.Valid(address) {
		return domain.ErrInvalidEmail
	}

	created, err := s.subscribers.Subscribe(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	logger.Info(ctx).Bool("new", created).Msg("Newsletter subscription")
	return nil
}
