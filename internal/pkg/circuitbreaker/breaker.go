package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rescuerush/rescuerush/internal/pkg/logger"
)

// ErrOpen is returned while the breaker rejects calls without trying the
// downstream provider.
var ErrOpen = errors.New("circuit breaker is open")

// State is the breaker lifecycle state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "CLOSED"
	}
}

// Config tunes one breaker instance
type Config struct {
	Name             string
	FailureThreshold int           // consecutive failures that open the breaker
	SuccessThreshold int           // consecutive half-open successes that close it
	OpenTimeout      time.Duration // how long to reject before probing again
	Interval         time.Duration // counter reset window while closed
}

// DefaultConfig returns conservative settings for an external provider.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		OpenTimeout:      60 * time.Second,
		Interval:         30 * time.Second,
	}
}

// Breaker guards calls to a flaky downstream. It opens after a run of
// consecutive failures, rejects while open, and probes with single calls
// once the open timeout elapses.
type Breaker struct {
	cfg Config

	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	probeInUse  bool
	nextTransit time.Time
}

// New creates a breaker in the closed state.
func New(cfg Config) *Breaker {
	return &Breaker{
		cfg:         cfg,
		state:       StateClosed,
		nextTransit: time.Now().Add(cfg.Interval),
	}
}

// Do runs fn under breaker protection. When the breaker is open the call is
// rejected with ErrOpen and fn never runs.
func (b *Breaker) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn(ctx)
	b.after(err)
	return err
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	switch b.state {
	case StateClosed:
		if b.nextTransit.Before(now) {
			b.failures = 0
			b.nextTransit = now.Add(b.cfg.Interval)
		}
	case StateOpen:
		if b.nextTransit.After(now) {
			return ErrOpen
		}
		b.setState(StateHalfOpen)
		b.successes = 0
		b.probeInUse = false
		fallthrough
	case StateHalfOpen:
		if b.probeInUse {
			return ErrOpen
		}
		b.probeInUse = true
	}
	return nil
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probeInUse = false

	if err != nil {
		b.failures++
		b.successes = 0
		if b.state == StateHalfOpen || (b.state == StateClosed && b.failures >= b.cfg.FailureThreshold) {
			b.setState(StateOpen)
			b.nextTransit = time.Now().Add(b.cfg.OpenTimeout)
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.setState(StateClosed)
			b.nextTransit = time.Now().Add(b.cfg.Interval)
		}
	}
}

func (b *Breaker) setState(next State) {
	if b.state == next {
		return
	}
	prev := b.state
	b.state = next
	logger.Info("Circuit breaker state changed",
		logger.String("name", b.cfg.Name),
		logger.String("from", prev.String()),
		logger.String("to", next.String()),
		logger.Int("consecutive_failures", b.failures))
}
