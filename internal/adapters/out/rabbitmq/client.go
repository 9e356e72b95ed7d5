// Package rabbitmq implements the realtime order event channel on top of a
// RabbitMQ topic exchange. Every committed order change is published to the
// orders exchange with a per-order routing key, and tracking clients
// subscribe to the single order they follow.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange is the topic exchange all order events flow through.
const Exchange = "orders.events"

// routingKey returns the per-order routing key events are published under.
func routingKey(orderID string) string {
	return "order." + orderID
}

// Client owns the broker connection shared by the publisher and subscribers.
type Client struct {
	conn *amqp.Connection
}

// NewClient connects to the broker and declares the orders exchange.
func NewClient(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		Exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	return &Client{conn: conn}, nil
}

// Channel opens a fresh channel on the shared connection.
func (c *Client) Channel() (*amqp.Channel, error) {
	return c.conn.Channel()
}

// Close shuts down the broker connection and every channel opened on it.
func (c *Client) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("close rabbitmq connection: %w", err)
	}
	return nil
}
