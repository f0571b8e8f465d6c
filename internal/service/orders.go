package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/events"
	"demo/orderflow/internal/model"
	"demo/orderflow/internal/store"
	"demo/orderflow/internal/upstream"
	"demo/orderflow/internal/validate"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=servicemock/mock_service.go -package=servicemock demo/orderflow/internal/service UserChecker,Notifier,EventPublisher

const (
	msgOrderNotFound = "Order not found."
	msgUserMissing   = "User does not exist."

	publishTimeout = 2 * time.Second
)

var tracer = otel.Tracer("demo/orderflow/internal/service")

type UserChecker interface {
	CheckUserExists(ctx context.Context, userID int64) (upstream.UserLookup, error)
}

type Notifier interface {
	SendNotification(ctx context.Context, userID, orderID int64, message string) upstream.Delivery
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// Orders owns the order lifecycle. Creation is the only path that talks to
// other services: user check, write, then notification.
type Orders struct {
	repo     store.OrderRepository
	users    UserChecker
	notifier Notifier
	events   EventPublisher
	log      *zap.Logger
	now      func() time.Time
}

func NewOrders(repo store.OrderRepository, users UserChecker, notifier Notifier, pub EventPublisher, log *zap.Logger) *Orders {
	if pub == nil {
		pub = events.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orders{repo: repo, users: users, notifier: notifier, events: pub, log: log, now: time.Now}
}

func (s *Orders) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.CreatedOrder, error) {
	ctx, span := tracer.Start(ctx, "Orders.CreateOrder")
	defer span.End()

	in, err := validate.OrderCreate(req)
	if err != nil {
		return model.CreatedOrder{}, err
	}
	span.SetAttributes(attribute.Int64("order.user_id", in.UserID))

	lookup, err := s.users.CheckUserExists(ctx, in.UserID)
	if err != nil {
		recordErr(span, err)
		return model.CreatedOrder{}, err
	}
	if !lookup.Found {
		return model.CreatedOrder{}, apperr.Validation(msgUserMissing)
	}

	in.Status = model.StatusCreated
	in.CreatedAt = s.timestamp()
	o, err := s.repo.CreateOrder(ctx, in)
	if err != nil {
		recordErr(span, err)
		return model.CreatedOrder{}, fmt.Errorf("create order: %w", err)
	}
	span.SetAttributes(attribute.Int64("order.id", o.ID))
	s.log.Info("order created", zap.Int64("order_id", o.ID), zap.Int64("user_id", o.UserID))

	d := s.notifier.SendNotification(ctx, o.UserID, o.ID, fmt.Sprintf("Order #%d created for user #%d.", o.ID, o.UserID))
	if !d.Delivered {
		s.log.Warn("order notification failed", zap.Int64("order_id", o.ID), zap.String("reason", d.Error))
	}

	s.publish(ctx, events.OrderCreated, o)

	return model.CreatedOrder{Order: o, NotificationSent: d.Delivered, NotificationError: d.Error}, nil
}

func (s *Orders) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	o, ok, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}
	if !ok {
		return model.Order{}, apperr.NotFound(msgOrderNotFound)
	}
	return o, nil
}

// ListOrders returns every order, newest id first.
func (s *Orders) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder reports a missing order before looking at the body. The body
// is validated in full before anything is written.
func (s *Orders) UpdateOrder(ctx context.Context, id int64, req model.UpdateOrderRequest) (model.Order, error) {
	ctx, span := tracer.Start(ctx, "Orders.UpdateOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if _, err := s.GetOrder(ctx, id); err != nil {
		return model.Order{}, err
	}

	upd, err := validate.OrderUpdate(req)
	if err != nil {
		return model.Order{}, err
	}

	o, ok, err := s.repo.UpdateOrder(ctx, id, upd)
	if err != nil {
		recordErr(span, err)
		return model.Order{}, fmt.Errorf("update order: %w", err)
	}
	if !ok {
		return model.Order{}, apperr.NotFound(msgOrderNotFound)
	}

	s.publish(ctx, events.OrderUpdated, o)
	return o, nil
}

func (s *Orders) DeleteOrder(ctx context.Context, id int64) error {
	o, ok, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if !ok {
		return apperr.NotFound(msgOrderNotFound)
	}

	s.publish(ctx, events.OrderDeleted, o)
	return nil
}

// publish never fails the caller. A slow broker is cut off after
// publishTimeout and the event is dropped.
func (s *Orders) publish(ctx context.Context, t events.Type, o model.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ev := events.NewEvent(t, o, s.now())
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("order event dropped",
			zap.String("type", string(t)), zap.Int64("order_id", o.ID), zap.Error(err))
	}
}

func (s *Orders) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

func recordErr(span trace.Span, err error) {
	var v *apperr.ValidationError
	if errors.As(err, &v) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
