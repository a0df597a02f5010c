// Package breaker guards calls to the storefront's outbound integrations (the mail relay
// and the event broker) so a dead dependency fails fast instead of stalling requests.
package breaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/adielbeauty/storefront/pkg/logger"
)

// ErrOpen is returned without calling through while the circuit is open
var ErrOpen = errors.New("circuit breaker is open")

// State represents the state of a circuit breaker
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// successes needed in half-open before closing again
const halfOpenSuccesses = 3

var circuitState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "storefront_circuit_state",
		Help: "Circuit breaker state per dependency (0 closed, 1 half-open, 2 open)",
	},
	[]string{"name"},
)

func (s State) gauge() float64 {
	switch s {
	case StateHalfOpen:
		return 1
	case StateOpen:
		return 2
	}
	return 0
}

// Breaker implements the circuit breaker pattern
type Breaker struct {
	name        string
	maxFailures int
	timeout     time.Duration

	mu              sync.Mutex
	state           State
	failures        int
	successCount    int
	lastStateChange time.Time
	now             func() time.Time
}

// New creates a closed breaker that opens after maxFailures consecutive failures and
// lets a trial call through once timeout has passed
func New(name string, maxFailures int, timeout time.Duration) *Breaker {
	if maxFailures < 1 {
		maxFailures = 1
	}
	b := &Breaker{
		name:        name,
		maxFailures: maxFailures,
		timeout:     timeout,
		state:       StateClosed,
		now:         time.Now,
	}
	b.lastStateChange = b.now()
	circuitState.WithLabelValues(name).Set(StateClosed.gauge())
	return b
}

// Execute runs fn unless the circuit is open
func (b *Breaker) Execute(fn func() error) error {
	b.mu.Lock()
	if b.state == StateOpen && b.now().Sub(b.lastStateChange) > b.timeout {
		b.setState(StateHalfOpen)
		logger.Logger.Info().Str("circuit", b.name).Msg("Circuit breaker transitioning to half-open")
	}
	state := b.state
	b.mu.Unlock()

	if state == StateOpen {
		return fmt.Errorf("%w for %s", ErrOpen, b.name)
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
	} else {
		b.onSuccess()
	}
	return err
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) setState(s State) {
	b.state = s
	b.lastStateChange = b.now()
	b.successCount = 0
	circuitState.WithLabelValues(b.name).Set(s.gauge())
}

func (b *Breaker) onFailure() {
	b.failures++

	switch {
	case b.state == StateHalfOpen:
		b.setState(StateOpen)
		logger.Logger.Warn().Str("circuit", b.name).Msg("Circuit breaker reopened after half-open failure")
	case b.state == StateClosed && b.failures >= b.maxFailures:
		b.setState(StateOpen)
		logger.Logger.Error().
			Str("circuit", b.name).
			Int("failures", b.failures).
			Int("threshold", b.maxFailures).
			Msg("Circuit breaker opened")
	}
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case StateHalfOpen:
		b.successCount++
		if b.successCount >= halfOpenSuccesses {
			b.failures = 0
			b.setState(StateClosed)
			logger.Logger.Info().Str("circuit", b.name).Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		b.failures = 0
	}
}
