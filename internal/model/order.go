package model

import (
	"encoding/json"
	"time"
)

// StatusCreated is the status every order starts with.
const StatusCreated = "created"

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Item      string    `json:"item"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedOrder is a freshly persisted order together with the outcome of
// the notification sent for it.
type CreatedOrder struct {
	Order
	NotificationSent  bool   `json:"notification_sent"`
	NotificationError string `json:"notification_error,omitempty"`
}

// NewOrder is a validated order that has not been stored yet.
type NewOrder struct {
	UserID    int64
	Item      string
	Amount    int64
	Status    string
	CreatedAt time.Time
}

// CreateOrderRequest keeps the raw JSON of each field so that type errors
// ("amount": "ten") surface as validation failures instead of decode errors.
type CreateOrderRequest struct {
	UserID json.RawMessage `json:"user_id"`
	Item   json.RawMessage `json:"item"`
	Amount json.RawMessage `json:"amount"`
}

type UpdateOrderRequest struct {
	Status json.RawMessage `json:"status"`
	Item   json.RawMessage `json:"item"`
	Amount json.RawMessage `json:"amount"`
}

// OrderUpdate is the set of fields a partial update writes. A nil field is
// left untouched.
type OrderUpdate struct {
	Status *string
	Item   *string
	Amount *int64
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.Item == nil && u.Amount == nil
}
