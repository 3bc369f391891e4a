package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/brushtrack/brushtrack/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// PublishDomainEvents marshals and publishes a batch of domain events.
func PublishDomainEvents(ctx context.Context, pub Publisher, events []domain.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := pub.Publish(ctx, event.RoutingKey(), payload); err != nil {
			return err
		}
	}
	return nil
}

// NoopPublisher discards all messages. Used in tests and when no broker or
// consumer is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger}
}

// Publish logs the message but doesn't actually publish.
func (p *NoopPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	p.logger.Debug("noop publish", "routing_key", routingKey, "size", len(payload))
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error { return nil }
