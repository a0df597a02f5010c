package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// Email builds a mailto link pre-filled with the order
type Email struct {
	vendor Vendor
}

// NewEmail creates the email channel
func NewEmail(vendor Vendor) *Email {
	return &Email{vendor: vendor}
}

// Subject returns the mail subject for an order
func (e *Email) Subject(order *domain.OrderSummary) string {
	return fmt.Sprintf("New Order - %s", order.OrderID)
}

// Body renders the plain-text mail body
func (e *Email) Body(order *domain.OrderSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NEW ORDER - %s\n\n", e.vendor.Name)
	fmt.Fprintf(&b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "Date: %s\n\n", order.Date)
	fmt.Fprintf(&b, "Items:\n%s\n\n", itemLines(order))
	fmt.Fprintf(&b, "Total: %s\n\n", order.GrandTotal.Total())
	fmt.Fprintf(&b, "Customer: %s\n", customerLine(order.Customer))
	fmt.Fprintf(&b, "Payment Method: %s\n", order.PaymentMethod.Label())
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	fmt.Fprintf(&b, "Please confirm this order and provide payment details for %s.", order.PaymentMethod.Label())
	return b.String()
}

// Dispatch builds the compose link
func (e *Email) Dispatch(ctx context.Context, order *domain.OrderSummary) (*Handoff, error) {
	if e.vendor.Email == "" {
		return nil, ErrNoVendorAddress
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	body := e.Body(order)
	handoff := &Handoff{
		Channel: domain.FulfillmentEmail,
		URL: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			e.vendor.Email, encodeComponent(e.Subject(order)), encodeComponent(body)),
		Message:        body,
		Acknowledgment: fmt.Sprintf("Order email opened!\nOrder ID: %s\n\nPlease send the email to confirm your order.", order.OrderID),
	}

	logger.Info(ctx).
		Str("order_id", order.OrderID).
		Str("channel", string(handoff.Channel)).
		Msg("Order handed off to email")

	return handoff, nil
}
