package model

import (
	"encoding/json"
	"time"
)

// Notification ids are nullable: the notification service stores whatever
// reference the sender gave it and performs no referential checks.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	OrderID   *int64    `json:"order_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NewNotification struct {
	UserID    *int64
	OrderID   *int64
	Message   string
	CreatedAt time.Time
}

type NotifyRequest struct {
	UserID  json.RawMessage `json:"user_id"`
	OrderID json.RawMessage `json:"order_id"`
	Message json.RawMessage `json:"message"`
}
