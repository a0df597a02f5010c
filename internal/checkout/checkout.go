// Package checkout builds orders from the cart and walks the customer through
// method selection, submission and hand-off to the vendor.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cart "github.com/adielbeauty/storefront/internal/cart/domain"
	"github.com/adielbeauty/storefront/internal/checkout/dispatch"
	"github.com/adielbeauty/storefront/internal/checkout/domain"
	"github.com/adielbeauty/storefront/pkg/logger"
)

var ordersDispatched = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "storefront_orders_dispatched_total",
		Help: "Total number of orders handed off to the vendor",
	},
	[]string{"channel", "payment_method"},
)

// ErrCancelled is returned when a submission was abandoned before hand-off
var ErrCancelled = errors.New("checkout cancelled")

// CartSource is the part of the cart store checkout reads and settles
type CartSource interface {
	Cart() []cart.CartItem
	RemoveOrdered(ctx context.Context, ordered map[string]int)
}

// CustomerSource reports the signed-in customer, nil when anonymous
type CustomerSource interface {
	CurrentCustomer() *domain.Customer
}

// EventPublisher announces dispatched orders
type EventPublisher interface {
	PublishOrderDispatched(ctx context.Context, order *domain.OrderSummary, handoff *dispatch.Handoff) error
}

// Options tunes the pacing delays
type Options struct {
	ProcessingDelay time.Duration
	CompletionDelay time.Duration
}

// DefaultOptions returns the storefront's pacing: 2s processing, 3s on the completion screen
func DefaultOptions() Options {
	return Options{
		ProcessingDelay: 2 * time.Second,
		CompletionDelay: 3 * time.Second,
	}
}

// Result is a completed hand-off
type Result struct {
	Order   *domain.OrderSummary `json:"order"`
	Handoff *dispatch.Handoff    `json:"handoff"`
}

// View is the checkout as the client renders it
type View struct {
	Snapshot
	PaymentMethods []domain.PaymentMethod `json:"payment_methods"`
	LastResult     *Result                `json:"last_result,omitempty"`
}

// Checkout is one session's checkout flow
type Checkout struct {
	store      CartSource
	customers  CustomerSource
	builder    *Builder
	dispatcher dispatch.Dispatcher
	publisher  EventPublisher
	opts       Options
	flow       *Flow

	wait     func(ctx context.Context, d time.Duration) error
	schedule func(d time.Duration, f func())

	mu         sync.Mutex
	cancel     context.CancelFunc
	lastResult *Result
}

// NewCheckout creates an idle checkout. publisher may be nil.
func NewCheckout(store CartSource, customers CustomerSource, builder *Builder, dispatcher dispatch.Dispatcher, publisher EventPublisher, opts Options) *Checkout {
	return &Checkout{
		store:      store,
		customers:  customers,
		builder:    builder,
		dispatcher: dispatcher,
		publisher:  publisher,
		opts:       opts,
		flow:       NewFlow(),
		wait:       sleep,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// View returns the current state
func (c *Checkout) View() View {
	c.mu.Lock()
	last := c.lastResult
	c.mu.Unlock()

	return View{
		Snapshot:       c.flow.Snapshot(),
		PaymentMethods: domain.PaymentMethods,
		LastResult:     last,
	}
}

// Begin opens the checkout. It refuses an empty cart or an anonymous caller.
func (c *Checkout) Begin(ctx context.Context) error {
	if len(c.store.Cart()) == 0 {
		return domain.Invalid(domain.ErrEmptyCart)
	}
	if c.customers.CurrentCustomer() == nil {
		return domain.Invalid(domain.ErrNotAuthenticated)
	}
	if err := c.flow.Begin(); err != nil {
		return err
	}

	logger.Debug(ctx).Msg("Checkout started")
	return nil
}

// SelectFulfillment records how the order will reach the vendor
func (c *Checkout) SelectFulfillment(m domain.FulfillmentMethod) error {
	return c.flow.SelectFulfillment(m)
}

// SelectPayment records the payment method
func (c *Checkout) SelectPayment(m domain.PaymentMethod) error {
	return c.flow.SelectPayment(m)
}

// Back abandons the checkout, cancelling a submission in progress.
// The cart is never touched.
func (c *Checkout) Back() error {
	if err := c.flow.Back(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
	return nil
}

// Submit builds the order, waits the processing delay and hands it off.
// The ordered lines leave the cart only after the completion delay, in one step.
func (c *Checkout) Submit(ctx context.Context) (*Result, error) {
	fulfillment, payment, err := c.flow.Submit()
	if err != nil {
		return nil, err
	}

	// Snapshot the cart into an order
	order, err := c.builder.Build(c.store.Cart(), c.customers.CurrentCustomer(), fulfillment, payment)
	if err != nil {
		c.failSubmission(ctx, err)
		return nil, err
	}

	// Processing pause, cancelled by Back
	waitCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	defer func() {
		cancel()
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
	}()

	if err := c.wait(waitCtx, c.opts.ProcessingDelay); err != nil {
		// Back already reset the flow when it caused the cancellation
		if c.flow.State() == StateSubmitting {
			_ = c.flow.Back()
		}
		logger.Info(ctx).Str("order_id", order.OrderID).Msg("Checkout cancelled during processing")
		return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if c.flow.State() != StateSubmitting {
		return nil, ErrCancelled
	}

	// Hand off to WhatsApp or email
	handoff, err := c.dispatcher.Dispatch(ctx, order)
	if err != nil {
		c.failSubmission(ctx, err)
		return nil, fmt.Errorf("failed to dispatch order: %w", err)
	}

	if err := c.flow.Complete(); err != nil {
		return nil, ErrCancelled
	}

	result := &Result{Order: order, Handoff: handoff}
	c.mu.Lock()
	c.lastResult = result
	c.mu.Unlock()

	ordersDispatched.WithLabelValues(string(handoff.Channel), string(order.PaymentMethod)).Inc()

	logger.Info(ctx).
		Str("order_id", order.OrderID).
		Str("channel", string(handoff.Channel)).
		Str("payment_method", string(order.PaymentMethod)).
		Float64("total", order.GrandTotal.Float64()).
		Int("items", order.ItemCount()).
		Msg("Order dispatched")

	// Publish event (best-effort)
	if c.publisher != nil {
		if err := c.publisher.PublishOrderDispatched(ctx, order, handoff); err != nil {
			logger.Warn(ctx).Err(err).Str("order_id", order.OrderID).Msg("Failed to publish order event")
		}
	}

	c.schedule(c.opts.CompletionDelay, func() { c.finish(order.Items) })

	return result, nil
}

func (c *Checkout) failSubmission(ctx context.Context, err error) {
	if ferr := c.flow.Fail(); ferr != nil {
		logger.Warn(ctx).Err(ferr).Msg("Checkout state changed during submission")
	}
	logger.Warn(ctx).Err(err).Msg("Order submission failed")
}

// finish takes the ordered lines out of the cart and returns the flow to Idle
func (c *Checkout) finish(items []domain.LineItem) {
	ctx := context.Background()

	ordered := make(map[string]int, len(items))
	for _, item := range items {
		ordered[item.ProductID] += item.Quantity
	}
	c.store.RemoveOrdered(ctx, ordered)

	if err := c.flow.Reset(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Checkout was not complete when resetting")
	}

	c.mu.Lock()
	c.lastResult = nil
	c.mu.Unlock()
}
