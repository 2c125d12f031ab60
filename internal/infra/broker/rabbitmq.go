// Package broker publishes messages to RabbitMQ.
package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booth-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// RabbitPublisher keeps one connection and redials after it drops.
type RabbitPublisher struct {
	url string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

func NewRabbitPublisher(url string) *RabbitPublisher {
	return &RabbitPublisher{url: url, declared: make(map[string]bool)}
}

// Publish sends a persistent JSON message to the default exchange with the queue name as routing key.
func (p *RabbitPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	if !p.declared[queue] {
		if _, err := ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		); err != nil {
			p.reset()
			return errs.Wrap(err, "rabbitmq: queue declare failed")
		}
		p.declared[queue] = true
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		p.reset()
		return errs.Wrap(err, "rabbitmq: publish failed")
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn, p.ch = nil, nil
	return err
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, errs.Wrap(err, "rabbitmq: dial failed")
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		p.reset()
		return nil, errs.Wrap(err, "rabbitmq: channel open failed")
	}
	p.ch = ch
	p.declared = make(map[string]bool)
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, queue string, body []byte) error {
	slog.Info("broker disabled, message dropped", "queue", queue, "bytes", len(body))
	return nil
}
