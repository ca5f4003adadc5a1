package bootstrap

import (
	"context"
	"log/slog"

	"hall-booking/internal/infra/events"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires the lifecycle-event publisher. Without MQ_URL the
// engine runs standalone and events are dropped.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		slog.Info("MQ_URL not set, lifecycle events disabled")
		return events.NewNoopPublisher(), nil
	}

	publisher, cleanup, err := events.NewAMQPPublisher(cfg.MQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher, nil
}
