package events

import (
	"context"
	"log/slog"

	"hall-booking/internal/usecase/commands"
)

// NoopPublisher stands in when no broker URL is configured; events are
// logged at debug level and dropped.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	slog.Debug("event publishing disabled, dropping event", "routing_key", routingKey)
	return nil
}

var _ commands.EventPublisher = (*NoopPublisher)(nil)
