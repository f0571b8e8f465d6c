// Package events publishes a best-effort audit feed of order state changes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"demo/orderflow/internal/config"
	"demo/orderflow/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Type string

const (
	OrderCreated Type = "order.created"
	OrderUpdated Type = "order.updated"
	OrderDeleted Type = "order.deleted"
)

const source = "order-service"

type Event struct {
	ID         uuid.UUID    `json:"id"`
	Type       Type         `json:"type"`
	OrderID    int64        `json:"order_id"`
	UserID     int64        `json:"user_id"`
	OccurredAt time.Time    `json:"occurred_at"`
	Order      *model.Order `json:"order,omitempty"`
}

// NewEvent snapshots o. Deleted orders carry no snapshot.
func NewEvent(t Type, o model.Order, at time.Time) Event {
	ev := Event{
		ID:         uuid.New(),
		Type:       t,
		OrderID:    o.ID,
		UserID:     o.UserID,
		OccurredAt: at.UTC(),
	}
	if t != OrderDeleted {
		snapshot := o
		ev.Order = &snapshot
	}
	return ev
}

func (e Event) Key() []byte { return []byte(fmt.Sprint(e.OrderID)) }

func (e Event) Payload() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.ID, err)
	}
	return b, nil
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// NewPublisher builds the publisher selected by cfg.Backend.
func NewPublisher(cfg config.Events, log *zap.Logger) (Publisher, error) {
	switch cfg.Backend {
	case "", config.BackendNone:
		return Nop{}, nil
	case config.BackendKafka:
		log.Info("order events to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.BackendRabbitMQ:
		log.Info("order events to rabbitmq", zap.String("queue", cfg.RabbitMQQueue))
		return NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}
