// Package dispatch hands a built order to the vendor. Both channels produce a
// pre-filled deep link the client opens; neither can observe delivery.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/adielbeauty/storefront/internal/checkout/domain"
)

var (
	ErrNoVendorNumber  = errors.New("vendor whatsapp number is not configured")
	ErrNoVendorAddress = errors.New("vendor email address is not configured")
	ErrNoCustomer      = errors.New("order has no customer identity")
	ErrUnknownChannel  = errors.New("no dispatcher for fulfillment method")
)

// Handoff is what the client needs to complete a dispatch
type Handoff struct {
	Channel        domain.FulfillmentMethod `json:"channel"`
	URL            string                   `json:"url"`
	Message        string                   `json:"message"`
	Acknowledgment string                   `json:"acknowledgment"`
}

// Dispatcher hands an order summary to one channel
type Dispatcher interface {
	Dispatch(ctx context.Context, order *domain.OrderSummary) (*Handoff, error)
}

// Vendor identifies who receives orders
type Vendor struct {
	Name           string
	ContactName    string
	WhatsAppNumber string
	Email          string
}

// Router picks the dispatcher for an order's fulfillment method
type Router struct {
	channels map[domain.FulfillmentMethod]Dispatcher
}

// NewRouter wires the WhatsApp and email channels for a vendor
func NewRouter(vendor Vendor) *Router {
	return &Router{
		channels: map[domain.FulfillmentMethod]Dispatcher{
			domain.FulfillmentWhatsApp: NewWhatsApp(vendor),
			domain.FulfillmentEmail:    NewEmail(vendor),
		},
	}
}

// Dispatch forwards to the channel selected by the order
func (r *Router) Dispatch(ctx context.Context, order *domain.OrderSummary) (*Handoff, error) {
	d, ok := r.channels[order.FulfillmentMethod]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, order.FulfillmentMethod)
	}
	return d.Dispatch(ctx, order)
}

// encodeComponent percent-encodes s the way browsers encode a URI component
func encodeComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return componentUnescaper.Replace(escaped)
}

var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func customerLine(c domain.Customer) string {
	if c.Name == "" {
		return c.Email
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Email)
}

func itemLines(order *domain.OrderSummary) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("• %s x%d - %s", item.Name, item.Quantity, item.LineTotal.Total()))
	}
	return strings.Join(lines, "\n")
}

func validateOrder(order *domain.OrderSummary) error {
	if order == nil || order.Customer.Email == "" {
		return ErrNoCustomer
	}
	return nil
}
