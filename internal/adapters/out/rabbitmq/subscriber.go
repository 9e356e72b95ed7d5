package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ordertrack/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderSubscriber opens per-order event subscriptions on the orders exchange.
type OrderSubscriber struct {
	client *Client
	logger *slog.Logger
}

// NewOrderSubscriber creates a subscriber using the shared client connection.
func NewOrderSubscriber(client *Client, logger *slog.Logger) *OrderSubscriber {
	return &OrderSubscriber{
		client: client,
		logger: logger.With("component", "rabbitmq_subscriber"),
	}
}

// Subscribe binds an exclusive queue to the order's routing key and streams
// decoded events until the subscription or the context is closed. Events are
// at least once; a reconnecting client may see a snapshot twice.
func (s *OrderSubscriber) Subscribe(ctx context.Context, orderID string) (ports.Subscription, error) {
	ch, err := s.client.Channel()
	if err != nil {
		return nil, fmt.Errorf("open subscription channel: %w", err)
	}

	queue, err := ch.QueueDeclare(
		"",    // name, broker generated
		false, // durable
		true,  // autoDelete
		true,  // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare subscription queue: %w", err)
	}

	if err = ch.QueueBind(queue.Name, routingKey(orderID), Exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("bind subscription queue: %w", err)
	}

	deliveries, err := ch.Consume(
		queue.Name, // queue
		"",         // consumer
		true,       // autoAck
		true,       // exclusive
		false,      // noLocal
		false,      // noWait
		nil,        // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("consume subscription queue: %w", err)
	}

	sub := &subscription{
		ch:     ch,
		events: make(chan ports.OrderEvent),
	}

	go sub.pump(ctx, deliveries, s.logger, orderID)

	return sub, nil
}

type subscription struct {
	ch     *amqp.Channel
	events chan ports.OrderEvent

	closeOnce sync.Once
}

// Events returns the channel events are delivered on.
func (s *subscription) Events() <-chan ports.OrderEvent {
	return s.events
}

// Close cancels the subscription. The events channel is closed once the
// delivery stream drains.
func (s *subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.ch.Close()
	})
	return err
}

func (s *subscription) pump(ctx context.Context, deliveries <-chan amqp.Delivery, logger *slog.Logger, orderID string) {
	defer close(s.events)
	defer func() {
		_ = s.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			var event ports.OrderEvent
			if err := json.Unmarshal(delivery.Body, &event); err != nil {
				logger.Warn("drop malformed order event", "error", err, "order_id", orderID)
				continue
			}

			select {
			case <-ctx.Done():
				return
			case s.events <- event:
			}
		}
	}
}
