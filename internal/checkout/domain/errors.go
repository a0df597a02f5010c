package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart                = errors.New("cart is empty")
	ErrNotAuthenticated         = errors.New("not authenticated")
	ErrNoFulfillmentMethod      = errors.New("no fulfillment method selected")
	ErrNoPaymentMethod          = errors.New("no payment method selected")
	ErrUnknownFulfillmentMethod = errors.New("unknown fulfillment method")
	ErrUnknownPaymentMethod     = errors.New("unknown payment method")
)

// ValidationError is a refused precondition. Nothing was mutated.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the customer
func (e *ValidationError) Message() string {
	switch {
	case errors.Is(e.Err, ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(e.Err, ErrNotAuthenticated):
		return "Please log in to proceed with checkout"
	case errors.Is(e.Err, ErrNoFulfillmentMethod), errors.Is(e.Err, ErrUnknownFulfillmentMethod):
		return "Please select how you want to place your order (WhatsApp or Email)"
	case errors.Is(e.Err, ErrNoPaymentMethod), errors.Is(e.Err, ErrUnknownPaymentMethod):
		return "Please select a payment method"
	}
	return e.Err.Error()
}

// Invalid wraps err in a ValidationError
func Invalid(err error) error {
	return &ValidationError{Err: err}
}
