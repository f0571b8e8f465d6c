package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type NewUser struct {
	Name      string
	Email     string
	CreatedAt time.Time
}

type UserRequest struct {
	Name  json.RawMessage `json:"name"`
	Email json.RawMessage `json:"email"`
}

type UserUpdate struct {
	Name  *string
	Email *string
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil
}
