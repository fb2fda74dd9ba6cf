package notifications

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

type ProtectedNotifierConfig struct {
	Timeout          time.Duration // hard timeout per notice
	FailureThreshold int           // consecutive failures to open circuit
	Cooldown         time.Duration // how long to stay open before half-open
	HalfOpenMaxCalls int           // trial calls allowed while half-open

	now func() time.Time
}

type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

// ProtectedNotifier bounds each delivery with a timeout and stops calling
// a notifier that keeps failing until a cooldown has passed.
type ProtectedNotifier struct {
	inner Notifier
	cfg   ProtectedNotifierConfig

	mu               sync.Mutex
	state            circuitState
	failures         int
	openedAt         time.Time
	halfOpenInFlight int
}

func NewProtectedNotifier(inner Notifier, cfg ProtectedNotifierConfig) *ProtectedNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 1
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}

	return &ProtectedNotifier{inner: inner, cfg: cfg}
}

func (n *ProtectedNotifier) Notify(ctx context.Context, notice Notice) error {
	if !n.acquire() {
		return ErrCircuitOpen
	}

	sendCtx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	err := n.inner.Notify(sendCtx, notice)
	n.release(err)
	return err
}

func (n *ProtectedNotifier) acquire() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state == circuitOpen {
		if n.cfg.now().Sub(n.openedAt) < n.cfg.Cooldown {
			return false
		}
		n.state = circuitHalfOpen
		n.halfOpenInFlight = 0
	}

	if n.state == circuitHalfOpen {
		if n.halfOpenInFlight >= n.cfg.HalfOpenMaxCalls {
			return false
		}
		n.halfOpenInFlight++
	}
	return true
}

func (n *ProtectedNotifier) release(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state == circuitHalfOpen && n.halfOpenInFlight > 0 {
		n.halfOpenInFlight--
	}

	if err == nil {
		n.failures = 0
		n.state = circuitClosed
		return
	}

	n.failures++

	// a failed trial reopens at once
	if n.state == circuitHalfOpen || n.failures >= n.cfg.FailureThreshold {
		n.state = circuitOpen
		n.openedAt = n.cfg.now()
	}
}
