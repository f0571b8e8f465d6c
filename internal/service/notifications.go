package service

import (
	"context"
	"fmt"
	"time"

	"demo/orderflow/internal/model"
	"demo/orderflow/internal/store"
	"demo/orderflow/internal/validate"

	"go.uber.org/zap"
)

// Notifications stores messages; delivery to a real channel is the log line.
type Notifications struct {
	repo store.NotificationRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewNotifications(repo store.NotificationRepository, log *zap.Logger) *Notifications {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifications{repo: repo, log: log, now: time.Now}
}

func (s *Notifications) Notify(ctx context.Context, req model.NotifyRequest) (model.Notification, error) {
	in, err := validate.Notification(req)
	if err != nil {
		return model.Notification{}, err
	}
	in.CreatedAt = s.now().UTC().Truncate(time.Second)

	n, err := s.repo.CreateNotification(ctx, in)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	fields := []zap.Field{zap.Int64("notification_id", n.ID), zap.String("message", n.Message)}
	if n.UserID != nil {
		fields = append(fields, zap.Int64("user_id", *n.UserID))
	}
	if n.OrderID != nil {
		fields = append(fields, zap.Int64("order_id", *n.OrderID))
	}
	s.log.Info("notification stored", fields...)
	return n, nil
}

func (s *Notifications) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	out, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}
