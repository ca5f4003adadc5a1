package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher emits lifecycle events on a durable topic exchange. Publishes
// happen after the owning transaction commits, so a broker failure never
// rolls back a reservation; callers log and move on.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewAMQPPublisher(cfg config.MQConfig) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial message broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open broker channel")
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare exchange")
	}

	p := &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
	}
	cleanup := func() {
		_ = p.ch.Close()
		_ = p.conn.Close()
	}
	return p, cleanup, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}

var _ commands.EventPublisher = (*AMQPPublisher)(nil)
