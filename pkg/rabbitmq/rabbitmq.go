// Package rabbitmq owns the broker connection, the checkout topology and the
// integration event publisher. Everything declared here is durable: the
// broker is the only place an event lives between a successful publish and
// the consumer's acknowledgment.
package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
)

type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects and opens a channel in confirm mode, so publishes can wait
// for a broker ack instead of silently dropping on a dead connection.
func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &Client{conn: conn, ch: ch}, nil
}

// Channel exposes the underlying channel for consumers.
func (c *Client) Channel() *amqp.Channel {
	return c.ch
}

// NewChannel opens an additional channel on the same connection. Each
// consumer runs on its own channel so Qos and acknowledgements stay isolated.
func (c *Client) NewChannel() (*amqp.Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return ch, nil
}

// DeclareTopology declares the dead-letter pair plus one fanout exchange and
// one durable queue per event schema version. Both sides of the pipeline call
// this at startup; declaration is idempotent.
func (c *Client) DeclareTopology() error {
	if err := c.ch.ExchangeDeclare(
		events.DeadLetterExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare dead-letter exchange: %w", err)
	}

	if _, err := c.ch.QueueDeclare(
		events.DeadLetterQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("declare dead-letter queue: %w", err)
	}

	if err := c.ch.QueueBind(
		events.DeadLetterQueue,
		events.DeadLetterQueue,
		events.DeadLetterExchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("bind dead-letter queue: %w", err)
	}

	bindings := []struct {
		exchange string
		queue    string
	}{
		{events.CheckoutExchange, events.CheckoutQueue},
		{events.CheckoutExchangeV2, events.CheckoutQueueV2},
	}

	for _, b := range bindings {
		if err := c.ch.ExchangeDeclare(
			b.exchange,
			"fanout",
			true,
			false,
			false,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("declare exchange %s: %w", b.exchange, err)
		}

		if _, err := c.ch.QueueDeclare(
			b.queue,
			true,
			false,
			false,
			false,
			amqp.Table{
				"x-dead-letter-exchange":    events.DeadLetterExchange,
				"x-dead-letter-routing-key": events.DeadLetterQueue,
			},
		); err != nil {
			return fmt.Errorf("declare queue %s: %w", b.queue, err)
		}

		if err := c.ch.QueueBind(b.queue, "", b.exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", b.queue, err)
		}
	}

	return nil
}

func (c *Client) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
