package amqp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// ErrDeliveriesClosed is returned by ConsumeChanges when the broker closes
// the delivery channel.
var ErrDeliveriesClosed = errors.New("amqp: delivery channel closed")

// Client publishes and consumes change notifications on a fanout exchange.
// Each process binds its own exclusive queue so every instance sees every
// change; messages carrying the client's own origin are skipped.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	origin       string
	logger       *logrus.Logger
}

func NewClient(url, exchangeName, origin string, logger *logrus.Logger) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		origin:       origin,
		logger:       logger,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"fanout",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	// Server-named, removed with the connection.
	queue, err := c.channel.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	c.queueName = queue.Name

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		"",             // routing key, ignored by fanout
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Origin identifies this process in published messages.
func (c *Client) Origin() string {
	return c.origin
}

// PublishChange stamps msg with this client's origin and publishes it.
func (c *Client) PublishChange(ctx context.Context, msg *ChangeMessage) error {
	msg.Origin = c.origin
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		"",             // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   msg.Timestamp,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"collection": msg.Collection,
		"op":         msg.Op,
		"id":         msg.ID,
		"exchange":   c.exchangeName,
	}).Debug("AMQP.PublishChange.published")

	return nil
}

// ConsumeChanges delivers messages from other origins to handler until ctx
// is done or the broker closes the channel.
func (c *Client) ConsumeChanges(ctx context.Context, handler func(*ChangeMessage) error) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		true,        // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.WithField("queue", c.queueName).Info("AMQP.ConsumeChanges.started")

	for {
		select {
		case <-ctx.Done():
			c.logger.WithField("reason", ctx.Err()).Info("AMQP.ConsumeChanges.stopping")
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.dispatch(delivery.Body, delivery, handler)
		}
	}
}

// acknowledger is the part of amqp091.Delivery dispatch needs.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) dispatch(body []byte, ack acknowledger, handler func(*ChangeMessage) error) {
	msg, err := ChangeMessageFromJSON(body)
	if err != nil {
		c.logger.WithError(err).Error("AMQP.ConsumeChanges.unmarshal")
		_ = ack.Nack(false, false)
		return
	}

	if msg.Origin == c.origin {
		_ = ack.Ack(false)
		return
	}

	log := c.logger.WithFields(logrus.Fields{
		"collection": msg.Collection,
		"op":         msg.Op,
		"origin":     msg.Origin,
	})

	// Handlers reload full state, so a failed message is dropped rather
	// than requeued; the next change brings the reader up to date.
	if err := handler(msg); err != nil {
		log.WithError(err).Error("AMQP.ConsumeChanges.handle")
		_ = ack.Nack(false, false)
		return
	}

	_ = ack.Ack(false)
	log.Debug("AMQP.ConsumeChanges.handled")
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
