package checkout

import (
	"fmt"
	"sync"
	"time"

	cart "github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/money"
)

// DateLayout is how order dates are written in vendor messages
const DateLayout = "1/2/2006"

// OrderIDGenerator issues ORD-<unix millis> ids, bumping the timestamp when two
// builds land in the same millisecond so ids never repeat within the process.
type OrderIDGenerator struct {
	mu   sync.Mutex
	last int64
}

// Next returns the next order id for the given instant
func (g *OrderIDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("ORD-%d", ms)
}

// Builder turns a cart snapshot into an OrderSummary. It performs no I/O.
type Builder struct {
	ids *OrderIDGenerator
	now func() time.Time
}

// NewBuilder creates a builder sharing the given id generator
func NewBuilder(ids *OrderIDGenerator) *Builder {
	if ids == nil {
		ids = &OrderIDGenerator{}
	}
	return &Builder{ids: ids, now: time.Now}
}

// WithClock replaces the time source
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build validates the preconditions and prices every line.
// A refused build returns a *domain.ValidationError.
func (b *Builder) Build(items []cart.CartItem, customer *domain.Customer, fulfillment domain.FulfillmentMethod, payment domain.PaymentMethod) (*domain.OrderSummary, error) {
	if len(items) == 0 {
		return nil, domain.Invalid(domain.ErrEmptyCart)
	}
	if customer == nil || customer.Email == "" {
		return nil, domain.Invalid(domain.ErrNotAuthenticated)
	}
	if err := ValidateFulfillment(fulfillment); err != nil {
		return nil, err
	}
	if err := ValidatePayment(payment); err != nil {
		return nil, err
	}

	lines := make([]domain.LineItem, 0, len(items))
	var total money.Amount
	for _, item := range items {
		line := domain.LineItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
		total += line.LineTotal
		lines = append(lines, line)
	}

	now := b.now()
	return &domain.OrderSummary{
		OrderID:           b.ids.Next(now),
		Date:              now.Format(DateLayout),
		CreatedAt:         now,
		Items:             lines,
		GrandTotal:        total,
		Customer:          *customer,
		FulfillmentMethod: fulfillment,
		PaymentMethod:     payment,
		Status:            domain.StatusPendingPayment,
	}, nil
}

// ValidateFulfillment checks a fulfillment selection
func ValidateFulfillment(m domain.FulfillmentMethod) error {
	if m == "" {
		return domain.Invalid(domain.ErrNoFulfillmentMethod)
	}
	if !m.Valid() {
		return domain.Invalid(fmt.Errorf("%w: %q", domain.ErrUnknownFulfillmentMethod, m))
	}
	return nil
}

// ValidatePayment checks a payment selection
func ValidatePayment(m domain.PaymentMethod) error {
	if m == "" {
		return domain.Invalid(domain.ErrNoPaymentMethod)
	}
	if !m.Valid() {
		return domain.Invalid(fmt.Errorf("%w: %q", domain.ErrUnknownPaymentMethod, m))
	}
	return nil
}
