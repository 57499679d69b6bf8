// Package rmq publishes delivery lifecycle events to RabbitMQ. Events are
// serialized as JSON and routed on a durable topic exchange by delivery
// status, so consumers can bind to the subset they care about.
package rmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"parcelflow/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher implements ports.Notifier on top of an AMQP channel.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher connects to RabbitMQ and declares the topic exchange.
// The caller owns the returned publisher and must Close it on shutdown.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "rmq-publisher"),
	}, nil
}

// PublishDeliveryStatusChanged publishes a status change event with routing
// key "delivery.status.<status>".
func (p *Publisher) PublishDeliveryStatusChanged(
	ctx context.Context,
	event ports.DeliveryStatusChanged,
) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status change event: %w", err)
	}

	routingKey := fmt.Sprintf("delivery.status.%s", event.Status)

	if err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("failed to publish status change event: %w", err)
	}

	p.logger.DebugContext(ctx, "published status change event",
		"delivery_id", event.DeliveryID,
		"routing_key", routingKey)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}
