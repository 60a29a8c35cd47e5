package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"clubhouse/internal/ports/output"
)

// RoutingAdmitted is the routing key of registration.admitted messages.
const RoutingAdmitted = "registration.admitted"

var _ output.RegistrationPublisher = (*Client)(nil)

// Client owns one AMQP connection and channel bound to a topic exchange and a durable queue.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	log      *zerolog.Logger
	mu       sync.Mutex
}

func NewClient(url, exchange, queue string, logger *zerolog.Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	c := &Client{conn: conn, channel: ch, exchange: exchange, queue: queue, log: logger}
	if err := c.declare(); err != nil {
		c.Close()
		return nil, err
	}
	logger.Info().Str("exchange", exchange).Str("queue", queue).Msg("rabbitmq initialized")
	return c, nil
}

func (c *Client) declare() error {
	if err := c.channel.ExchangeDeclare(
		c.exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := c.channel.QueueDeclare(
		c.queue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := c.channel.QueueBind(
		c.queue,
		RoutingAdmitted,
		c.exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.log.Info().Msg("rabbitmq connection closed")
}

func (c *Client) PublishAdmitted(ctx context.Context, msg output.RegistrationAdmitted) error {
	body, err := json.Marshal(fromAdmitted(msg))
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.PublishWithContext(ctx,
		c.exchange,
		RoutingAdmitted,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", RoutingAdmitted, err)
	}
	c.log.Debug().Str("event_id", msg.EventID).Str("customer_id", msg.CustomerID).Msg("registration published")
	return nil
}

// Consume delivers queue messages to handler until ctx is done. A failed message is
// requeued once; a second failure drops it.
func (c *Client) Consume(ctx context.Context, handler func(context.Context, output.RegistrationAdmitted) error) error {
	deliveries, err := c.channel.Consume(
		c.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}
	c.log.Info().Str("queue", c.queue).Msg("started consuming")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consume %s: delivery channel closed", c.queue)
			}
			c.handle(ctx, d, handler)
		}
	}
}

func (c *Client) handle(ctx context.Context, d amqp.Delivery, handler func(context.Context, output.RegistrationAdmitted) error) {
	msg, err := decodeAdmitted(d.Body)
	if err != nil {
		c.log.Error().Err(err).Str("body", string(d.Body)).Msg("drop malformed message")
		_ = d.Nack(false, false)
		return
	}
	if err := handler(ctx, msg); err != nil {
		requeue := !d.Redelivered
		c.log.Warn().Err(err).Str("event_id", msg.EventID).Bool("requeue", requeue).Msg("failed to process message")
		_ = d.Nack(false, requeue)
		return
	}
	_ = d.Ack(false)
}

// NopPublisher discards messages. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishAdmitted(context.Context, output.RegistrationAdmitted) error { return nil }
