package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// OrderPublisher pushes order events to the orders exchange.
// Publishing is best effort; callers treat a failed push as a lost
// notification, not a failed business operation.
type OrderPublisher struct {
	ch     *amqp.Channel
	logger *slog.Logger
	clock  func() time.Time
}

// NewOrderPublisher creates a publisher on the given channel.
func NewOrderPublisher(ch *amqp.Channel, logger *slog.Logger) *OrderPublisher {
	return &OrderPublisher{
		ch:     ch,
		logger: logger.With("component", "rabbitmq_publisher"),
		clock:  time.Now,
	}
}

// Publish sends one event for the given order. The routing key is derived
// from the order id so subscribers only receive events for their order.
func (p *OrderPublisher) Publish(ctx context.Context, eventType string, aggregate *order.Order) error {
	event := ports.OrderEvent{
		Type:      eventType,
		Order:     ports.NewOrderSnapshot(aggregate),
		EmittedAt: p.clock().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal order event", "error", err, "order_id", event.Order.OrderID)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		Exchange,                        // exchange
		routingKey(event.Order.OrderID), // routing key
		false,                           // mandatory
		false,                           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   event.EmittedAt,
		})
	if err != nil {
		p.logger.Warn("publish order event failed",
			"error", err,
			"event_type", eventType,
			"order_id", event.Order.OrderID,
		)
		return err
	}

	return nil
}
