package checkout

import (
	"errors"
	"fmt"
	"sync"

	"github.com/adielbeauty/storefront/internal/checkout/domain"
)

// State is a step of the checkout flow
type State string

// Checkout states
const (
	StateIdle             State = "idle"
	StateMethodSelection  State = "method_selection"
	StatePaymentSelection State = "payment_selection"
	StateSubmitting       State = "submitting"
	StateComplete         State = "complete"
)

// ErrInvalidTransition is returned for a transition the current state does not allow
var ErrInvalidTransition = errors.New("invalid checkout transition")

// Flow is the checkout state machine:
//
//	Idle -> MethodSelection -> PaymentSelection -> Submitting -> Complete -> Idle
//
// Back returns to Idle from either selection state or from Submitting. Fail
// returns from Submitting to PaymentSelection with the selections kept.
type Flow struct {
	mu          sync.Mutex
	state       State
	fulfillment domain.FulfillmentMethod
	payment     domain.PaymentMethod
}

// NewFlow creates an idle flow
func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

// Snapshot is the observable state of a flow
type Snapshot struct {
	State             State                    `json:"state"`
	FulfillmentMethod domain.FulfillmentMethod `json:"fulfillment_method,omitempty"`
	PaymentMethod     domain.PaymentMethod     `json:"payment_method,omitempty"`
}

// Snapshot returns the current state and selections
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{State: f.state, FulfillmentMethod: f.fulfillment, PaymentMethod: f.payment}
}

// State returns the current state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) transitionError(action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, f.state)
}

// Begin opens the checkout
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateIdle {
		return f.transitionError("begin")
	}
	f.state = StateMethodSelection
	f.fulfillment = ""
	f.payment = ""
	return nil
}

// SelectFulfillment records the fulfillment method. It may be changed while
// the payment method is still being chosen.
func (f *Flow) SelectFulfillment(m domain.FulfillmentMethod) error {
	if err := ValidateFulfillment(m); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateMethodSelection && f.state != StatePaymentSelection {
		return f.transitionError("select fulfillment")
	}
	f.fulfillment = m
	f.state = StatePaymentSelection
	return nil
}

// SelectPayment records the payment method
func (f *Flow) SelectPayment(m domain.PaymentMethod) error {
	if err := ValidatePayment(m); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePaymentSelection {
		return f.transitionError("select payment")
	}
	f.payment = m
	return nil
}

// Submit moves to Submitting and returns the selections to build the order with
func (f *Flow) Submit() (domain.FulfillmentMethod, domain.PaymentMethod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateMethodSelection:
		return "", "", domain.Invalid(domain.ErrNoFulfillmentMethod)
	case StatePaymentSelection:
		if f.payment == "" {
			return "", "", domain.Invalid(domain.ErrNoPaymentMethod)
		}
	default:
		return "", "", f.transitionError("submit")
	}

	f.state = StateSubmitting
	return f.fulfillment, f.payment, nil
}

// Complete marks the order as handed off
func (f *Flow) Complete() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSubmitting {
		return f.transitionError("complete")
	}
	f.state = StateComplete
	return nil
}

// Fail returns a submission to PaymentSelection for a retry
func (f *Flow) Fail() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSubmitting {
		return f.transitionError("fail")
	}
	f.state = StatePaymentSelection
	return nil
}

// Back abandons the checkout and discards the selections
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateMethodSelection, StatePaymentSelection, StateSubmitting:
		f.reset()
		return nil
	}
	return f.transitionError("go back")
}

// Reset returns to Idle after completion
func (f *Flow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateComplete {
		return f.transitionError("reset")
	}
	f.reset()
	return nil
}

func (f *Flow) reset() {
	f.state = StateIdle
	f.fulfillment = ""
	f.payment = ""
}
