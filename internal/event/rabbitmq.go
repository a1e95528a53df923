package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// amqpPublisher is the part of *amqp.Channel the sink uses
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitSink forwards events to a RabbitMQ topic exchange, routed by event type
type RabbitSink struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	pub      amqpPublisher
	exchange string
}

// DialRabbitSink connects to the broker and declares a durable topic exchange
func DialRabbitSink(url, exchange string) (*RabbitSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		RabbitExchangeKind,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare failed: %w", err)
	}

	return &RabbitSink{conn: conn, ch: ch, pub: ch, exchange: exchange}, nil
}

// Handle publishes one event as a persistent JSON message
func (s *RabbitSink) Handle(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, RabbitPublishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  RabbitContentType,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(e.Type),
		Body:         body,
	}
	if err := s.pub.PublishWithContext(ctx, s.exchange, string(e.Type), false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}

	logger.FromContext(ctx).Debug(LogMsgRabbitPublished, "event_type", e.Type, "exchange", s.exchange)
	return nil
}

// Register subscribes the sink to every game event type on bus
func (s *RabbitSink) Register(bus Bus) {
	for _, t := range AllTypes {
		bus.Subscribe(t, s.Handle)
	}
}

// Close closes the channel and connection
func (s *RabbitSink) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
