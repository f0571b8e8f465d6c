package events

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
}

func NewRabbitMQPublisher(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, queue: queue}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, e Event) error {
	body, err := e.Payload()
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,
		false,
		amqp.Publishing{
			MessageId:    e.ID.String(),
			Type:         string(e.Type),
			AppId:        source,
			ContentType:  "application/json",
			Timestamp:    e.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	chErr := p.channel.Close()
	if p.conn == nil {
		return chErr
	}
	if err := p.conn.Close(); err != nil {
		return err
	}
	return chErr
}
