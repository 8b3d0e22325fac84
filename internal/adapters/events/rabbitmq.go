// Package events publishes tip and claim outcomes to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"tweet-tipping/internal/domain"
	"tweet-tipping/pkg/log"
)

// Config describes the exchange outcomes are published to. When QueueName
// is set a durable queue is declared and bound with BindingKey.
type Config struct {
	URL        string
	Exchange   string
	QueueName  string
	BindingKey string
}

// Message is the JSON body of an outcome event.
type Message struct {
	Event     string             `json:"event"`
	Entry     domain.LedgerEntry `json:"entry"`
	Timestamp time.Time          `json:"timestamp"`
}

// NewMessage wraps entry for publishing.
func NewMessage(entry domain.LedgerEntry, now time.Time) Message {
	return Message{Event: entry.EventName(), Entry: entry, Timestamp: now.UTC()}
}

// RabbitMQ publishes outcome events to a topic exchange, using the event
// name as routing key.
type RabbitMQ struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *log.Logger
}

// NewRabbitMQ connects and declares the exchange (and queue, if configured).
func NewRabbitMQ(cfg Config, logger *log.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if cfg.QueueName != "" {
		bindingKey := cfg.BindingKey
		if bindingKey == "" {
			bindingKey = "#"
		}
		q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare queue: %w", err)
		}
		if err := ch.QueueBind(q.Name, bindingKey, cfg.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue: %w", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
	)

	return &RabbitMQ{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

// Publish sends entry as a persistent JSON message.
func (r *RabbitMQ) Publish(ctx context.Context, entry domain.LedgerEntry) error {
	msg := NewMessage(entry, time.Now())
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	r.mu.Lock()
	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		msg.Event,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    entry.ID,
			Body:         body,
			Timestamp:    msg.Timestamp,
		},
	)
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.DebugCtx(ctx, "published outcome", "event", msg.Event, "id", entry.ID)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
