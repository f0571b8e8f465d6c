package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequest_ExactKeys(t *testing.T) {
	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"USER_ID":1,"Item":"widget","AMOUNT":10}`), &req))
	require.Nil(t, req.UserID)
	require.Nil(t, req.Item)
	require.Nil(t, req.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"user_id":1,"item":"widget","amount":10}`), &req))
	require.Equal(t, json.RawMessage(`1`), req.UserID)
	require.Equal(t, json.RawMessage(`"widget"`), req.Item)
	require.Equal(t, json.RawMessage(`10`), req.Amount)
}

func TestUpdateOrderRequest_ExactKeys(t *testing.T) {
	var req UpdateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Status":"paid","amount":2}`), &req))
	require.Nil(t, req.Status)
	require.Equal(t, json.RawMessage(`2`), req.Amount)
}

func TestUserAndNotifyRequest_ExactKeys(t *testing.T) {
	var u UserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Name":"Ada","email":"a@b.c"}`), &u))
	require.Nil(t, u.Name)
	require.Equal(t, json.RawMessage(`"a@b.c"`), u.Email)

	var n NotifyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"MESSAGE":"hi","order_id":3}`), &n))
	require.Nil(t, n.Message)
	require.Equal(t, json.RawMessage(`3`), n.OrderID)
}

func TestRequest_NonObject(t *testing.T) {
	var req CreateOrderRequest
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &req))
}
