package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/model"
)

const (
	msgOrderRequired = "Fields 'user_id', 'item', and 'amount' are required."
	msgUserRequired  = "Fields 'name' and 'email' are required."
	msgNoFields      = "No updatable fields provided."
)

// OrderCreate checks a create request and reports the first rule it breaks:
// required fields, then user_id type, then amount type, then amount sign.
func OrderCreate(req model.CreateOrderRequest) (model.NewOrder, error) {
	item, _ := text(req.Item)
	item = strings.TrimSpace(item)
	if !present(req.UserID) || item == "" || !present(req.Amount) {
		return model.NewOrder{}, apperr.Validation(msgOrderRequired)
	}

	userID, ok := integer(req.UserID)
	if !ok {
		return model.NewOrder{}, mustBeInteger("user_id")
	}
	amount, err := positiveAmount(req.Amount)
	if err != nil {
		return model.NewOrder{}, err
	}

	return model.NewOrder{UserID: userID, Item: item, Amount: amount}, nil
}

// OrderUpdate builds the field set for a partial update. Fields are checked
// in the order status, item, amount; nothing is returned unless all pass.
func OrderUpdate(req model.UpdateOrderRequest) (model.OrderUpdate, error) {
	var upd model.OrderUpdate

	if present(req.Status) {
		s, err := nonEmptyText("status", req.Status)
		if err != nil {
			return model.OrderUpdate{}, err
		}
		upd.Status = &s
	}
	if present(req.Item) {
		s, err := nonEmptyText("item", req.Item)
		if err != nil {
			return model.OrderUpdate{}, err
		}
		upd.Item = &s
	}
	if present(req.Amount) {
		n, err := positiveAmount(req.Amount)
		if err != nil {
			return model.OrderUpdate{}, err
		}
		upd.Amount = &n
	}

	if upd.Empty() {
		return model.OrderUpdate{}, apperr.Validation(msgNoFields)
	}
	return upd, nil
}

func UserCreate(req model.UserRequest) (model.NewUser, error) {
	name, _ := text(req.Name)
	email, _ := text(req.Email)
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return model.NewUser{}, apperr.Validation(msgUserRequired)
	}
	return model.NewUser{Name: name, Email: email}, nil
}

func UserUpdate(req model.UserRequest) (model.UserUpdate, error) {
	var upd model.UserUpdate

	if present(req.Name) {
		s, err := nonEmptyText("name", req.Name)
		if err != nil {
			return model.UserUpdate{}, err
		}
		upd.Name = &s
	}
	if present(req.Email) {
		s, err := nonEmptyText("email", req.Email)
		if err != nil {
			return model.UserUpdate{}, err
		}
		upd.Email = &s
	}

	if upd.Empty() {
		return model.UserUpdate{}, apperr.Validation(msgNoFields)
	}
	return upd, nil
}

// Notification only insists on a message. The ids are references into other
// services and are kept when they look like integers, dropped otherwise.
func Notification(req model.NotifyRequest) (model.NewNotification, error) {
	msg, _ := text(req.Message)
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return model.NewNotification{}, apperr.Validation("Field 'message' is required.")
	}

	n := model.NewNotification{Message: msg}
	if id, ok := integer(req.UserID); ok {
		n.UserID = &id
	}
	if id, ok := integer(req.OrderID); ok {
		n.OrderID = &id
	}
	return n, nil
}

func positiveAmount(raw json.RawMessage) (int64, error) {
	n, ok := integer(raw)
	if !ok {
		return 0, mustBeInteger("amount")
	}
	if n <= 0 {
		return 0, apperr.Validation("Field 'amount' must be > 0.")
	}
	return n, nil
}

func nonEmptyText(field string, raw json.RawMessage) (string, error) {
	s, ok := text(raw)
	if !ok {
		return "", apperr.Validation(fmt.Sprintf("Field '%s' must be a string.", field))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperr.Validation(fmt.Sprintf("Field '%s' cannot be empty.", field))
	}
	return s, nil
}

func mustBeInteger(field string) error {
	return apperr.Validation(fmt.Sprintf("Field '%s' must be an integer.", field))
}

// present reports whether the field was sent with a non-null value.
func present(raw json.RawMessage) bool {
	s := bytes.TrimSpace(raw)
	return len(s) > 0 && !bytes.Equal(s, []byte("null"))
}

func decode(raw json.RawMessage) (any, bool) {
	if !present(raw) {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// integer accepts JSON numbers without a fractional part and strings that
// hold a base-10 integer.
func integer(raw json.RawMessage) (int64, bool) {
	v, ok := decode(raw)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true
		}
		f, err := x.Float64()
		if err != nil || f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
			return 0, false
		}
		return int64(f), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	}
	return 0, false
}

// text accepts scalars: strings as-is, numbers and booleans by their literal.
func text(raw json.RawMessage) (string, bool) {
	v, ok := decode(raw)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}
