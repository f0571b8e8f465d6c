package store

import (
	"context"

	"demo/orderflow/internal/model"
)

//go:generate mockgen -destination=storemock/mock_repository.go -package=storemock demo/orderflow/internal/store OrderRepository,UserRepository,NotificationRepository

// Lookups return ok=false, not an error, when the row does not exist.

type OrderRepository interface {
	CreateOrder(ctx context.Context, o model.NewOrder) (model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, bool, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd model.OrderUpdate) (model.Order, bool, error)
	DeleteOrder(ctx context.Context, id int64) (model.Order, bool, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u model.NewUser) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, bool, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) (model.User, bool, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n model.NewNotification) (model.Notification, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
}

var (
	_ OrderRepository        = (*Repo)(nil)
	_ UserRepository         = (*Repo)(nil)
	_ NotificationRepository = (*Repo)(nil)
)
