package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

// WhatsApp builds a wa.me link carrying the order message
type WhatsApp struct {
	vendor Vendor
}

// NewWhatsApp creates the WhatsApp channel
func NewWhatsApp(vendor Vendor) *WhatsApp {
	return &WhatsApp{vendor: vendor}
}

// Message renders the vendor-facing order text
func (w *WhatsApp) Message(order *domain.OrderSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍️ *NEW ORDER - %s*\n\n", w.vendor.Name)
	fmt.Fprintf(&b, "*Order ID:* %s\n", order.OrderID)
	fmt.Fprintf(&b, "*Date:* %s\n\n", order.Date)
	fmt.Fprintf(&b, "*Items:*\n%s\n\n", itemLines(order))
	fmt.Fprintf(&b, "*Total:* %s\n\n", order.GrandTotal.Total())
	fmt.Fprintf(&b, "*Customer:* %s\n", customerLine(order.Customer))
	fmt.Fprintf(&b, "*Payment Method:* %s\n", order.PaymentMethod.Label())
	fmt.Fprintf(&b, "*Status:* %s\n\n", order.Status)
	fmt.Fprintf(&b, "Please confirm this order and provide payment details for %s.", order.PaymentMethod.Label())
	return b.String()
}

// Dispatch builds the deep link
func (w *WhatsApp) Dispatch(ctx context.Context, order *domain.OrderSummary) (*Handoff, error) {
	if w.vendor.WhatsAppNumber == "" {
		return nil, ErrNoVendorNumber
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	message := w.Message(order)
	handoff := &Handoff{
		Channel: domain.FulfillmentWhatsApp,
		URL:     fmt.Sprintf("https://wa.me/%s?text=%s", w.vendor.WhatsAppNumber, encodeComponent(message)),
		Message: message,
		Acknowledgment: fmt.Sprintf("Order sent to WhatsApp!\nOrder ID: %s\n\n%s will contact you soon to confirm payment and delivery.",
			order.OrderID, w.vendor.ContactName),
	}

	logger.Info(ctx).
		Str("order_id", order.OrderID).
		Str("channel", string(handoff.Channel)).
		Msg("Order handed off to WhatsApp")

	return handoff, nil
}
