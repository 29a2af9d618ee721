// Package rabbitmq publishes committed domain events to a RabbitMQ topic exchange.
// Each event becomes one persistent JSON message routed by its event type.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eshift/internal/core/domain/events"

	"github.com/rabbitmq/amqp091-go"
)

var ErrPublisherIsClosed = errors.New("event publisher is closed")

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Message is the JSON body of a published event.
type Message struct {
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregateId"`
	OccurredAt  string         `json:"occurredAt"`
	Payload     map[string]any `json:"payload"`
}

// Publisher implements ports.EventPublisher. A single channel is shared and guarded by mu,
// amqp091 channels are not safe for concurrent publishing.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       channel
	exchange string
	closed   bool
	logger   *slog.Logger
}

// Dial connects to url, opens a channel and declares a durable topic exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := newPublisher(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ch.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher", "exchange", exchange),
	}, nil
}

// Publish sends the events in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, batch []events.Event) error {
	if len(batch) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherIsClosed
	}

	for _, e := range batch {
		body, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("encode %s event: %w", e.Type(), err)
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, e.Type(), false, false, amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    e.AggregateID().String() + ":" + e.Type(),
			Timestamp:    e.OccurredAt(),
			Type:         e.Type(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish %s event: %w", e.Type(), err)
		}
		p.logger.DebugContext(ctx, "event published", "type", e.Type(), "aggregate_id", e.AggregateID().String())
	}

	return nil
}

// Close releases the channel and, when dialed, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

func toMessage(e events.Event) Message {
	return Message{
		Type:        e.Type(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Payload:     e.Payload(),
	}
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, []events.Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
