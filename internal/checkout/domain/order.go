package domain

import (
	"time"

	"github.com/adielbeauty/storefront/pkg/money"
)

// FulfillmentMethod is the channel an order is handed to the vendor through
type FulfillmentMethod string

// Fulfillment methods
const (
	FulfillmentWhatsApp FulfillmentMethod = "whatsapp"
	FulfillmentEmail    FulfillmentMethod = "email"
)

// Valid reports whether m is a known fulfillment method
func (m FulfillmentMethod) Valid() bool {
	return m == FulfillmentWhatsApp || m == FulfillmentEmail
}

// PaymentMethod is one of the local mobile-money or bank options
type PaymentMethod string

// Payment methods
const (
	PaymentEcoCash      PaymentMethod = "ecocash"
	PaymentOneMoney     PaymentMethod = "onemoney"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods lists the payment options in display order
var PaymentMethods = []PaymentMethod{PaymentEcoCash, PaymentOneMoney, PaymentBankTransfer}

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentEcoCash, PaymentOneMoney, PaymentBankTransfer:
		return true
	}
	return false
}

// Label returns the display name
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentEcoCash:
		return "EcoCash"
	case PaymentOneMoney:
		return "OneMoney"
	case PaymentBankTransfer:
		return "Bank Transfer"
	}
	return string(m)
}

// Description returns the one-line explanation shown under the label
func (m PaymentMethod) Description() string {
	switch m {
	case PaymentEcoCash:
		return "Mobile money payment"
	case PaymentOneMoney:
		return "NetOne mobile money"
	case PaymentBankTransfer:
		return "Direct bank transfer"
	}
	return ""
}

// Customer is the signed-in identity an order is placed for
type Customer struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// LineItem is one cart entry priced at build time
type LineItem struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
	LineTotal money.Amount `json:"line_total"`
}

// OrderSummary is the immutable payload handed to a dispatch channel
type OrderSummary struct {
	OrderID           string            `json:"order_id"`
	Date              string            `json:"date"`
	CreatedAt         time.Time         `json:"created_at"`
	Items             []LineItem        `json:"items"`
	GrandTotal        money.Amount      `json:"grand_total"`
	Customer          Customer          `json:"customer"`
	FulfillmentMethod FulfillmentMethod `json:"fulfillment_method"`
	PaymentMethod     PaymentMethod     `json:"payment_method"`
	Status            string            `json:"status"`
}

// StatusPendingPayment is the only status an order leaves the storefront with
const StatusPendingPayment = "Pending Payment"

// ItemCount sums the line quantities
func (o OrderSummary) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
