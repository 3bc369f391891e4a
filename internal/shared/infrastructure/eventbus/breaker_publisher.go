package eventbus

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerPublisher wraps a Publisher with a circuit breaker so a flapping
// broker cannot stall task toggles. While the circuit is open, publishes
// are dropped with a warning; the toggle itself still succeeds.
type BreakerPublisher struct {
	inner   Publisher
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// NewBreakerPublisher creates a circuit-breaking publisher.
func NewBreakerPublisher(inner Publisher, logger *slog.Logger) *BreakerPublisher {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "event-publisher",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("publisher circuit state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerPublisher{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
		logger:  logger,
	}
}

// Publish sends through the breaker. Open-circuit rejections are logged and
// swallowed so event delivery stays best-effort.
func (p *BreakerPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.inner.Publish(ctx, routingKey, payload)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		p.logger.Warn("event dropped, publisher circuit open", "routing_key", routingKey)
		return nil
	}
	return err
}

// Close closes the wrapped publisher.
func (p *BreakerPublisher) Close() error {
	return p.inner.Close()
}
