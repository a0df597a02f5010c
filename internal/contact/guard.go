package contact

import (
	"context"

	"github.com/adielbeauty/storefront/internal/contact/domain"
	"github.com/adielbeauty/storefront/pkg/breaker"
)

// GuardedMailer stops calling the relay while it keeps failing
type GuardedMailer struct {
	next    domain.Mailer
	breaker *breaker.Breaker
}

// NewGuardedMailer wraps next with b
func NewGuardedMailer(next domain.Mailer, b *breaker.Breaker) *GuardedMailer {
	return &GuardedMailer{next: next, breaker: b}
}

// Send relays through the breaker
func (m *GuardedMailer) Send(ctx context.Context, params map[string]string) error {
	return m.breaker.Execute(func() error {
		return m.next.Send(ctx, params)
	})
}
