package model

import "encoding/json"

// Request bodies match field names exactly. encoding/json would otherwise
// accept "USER_ID" or "Item" for the tagged fields.

func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *CreateOrderRequest) UnmarshalJSON(data []byte) error {
	m, err := objectFields(data)
	if err != nil {
		return err
	}
	*r = CreateOrderRequest{UserID: m["user_id"], Item: m["item"], Amount: m["amount"]}
	return nil
}

func (r *UpdateOrderRequest) UnmarshalJSON(data []byte) error {
	m, err := objectFields(data)
	if err != nil {
		return err
	}
	*r = UpdateOrderRequest{Status: m["status"], Item: m["item"], Amount: m["amount"]}
	return nil
}

func (r *UserRequest) UnmarshalJSON(data []byte) error {
	m, err := objectFields(data)
	if err != nil {
		return err
	}
	*r = UserRequest{Name: m["name"], Email: m["email"]}
	return nil
}

func (r *NotifyRequest) UnmarshalJSON(data []byte) error {
	m, err := objectFields(data)
	if err != nil {
		return err
	}
	*r = NotifyRequest{UserID: m["user_id"], OrderID: m["order_id"], Message: m["message"]}
	return nil
}
