package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/events"
	"demo/orderflow/internal/model"
	"demo/orderflow/internal/service/servicemock"
	"demo/orderflow/internal/store/storemock"
	"demo/orderflow/internal/upstream"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC)

type ordersDeps struct {
	repo     *storemock.MockOrderRepository
	users    *servicemock.MockUserChecker
	notifier *servicemock.MockNotifier
	events   *servicemock.MockEventPublisher
}

func newOrders(t *testing.T) (*Orders, ordersDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := ordersDeps{
		repo:     storemock.NewMockOrderRepository(ctrl),
		users:    servicemock.NewMockUserChecker(ctrl),
		notifier: servicemock.NewMockNotifier(ctrl),
		events:   servicemock.NewMockEventPublisher(ctrl),
	}
	svc := NewOrders(d.repo, d.users, d.notifier, d.events, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, d
}

func createReq(body string) model.CreateOrderRequest {
	var req model.CreateOrderRequest
	_ = json.Unmarshal([]byte(body), &req)
	return req
}

func updateReq(body string) model.UpdateOrderRequest {
	var req model.UpdateOrderRequest
	_ = json.Unmarshal([]byte(body), &req)
	return req
}

func stored(id int64) model.Order {
	return model.Order{ID: id, UserID: 1, Item: "widget", Amount: 10, Status: "created", CreatedAt: fixedNow.Truncate(time.Second)}
}

func TestOrders_CreateOrder_HappyPath(t *testing.T) {
	svc, d := newOrders(t)
	want := stored(1)

	gomock.InOrder(
		d.users.EXPECT().CheckUserExists(gomock.Any(), int64(1)).
			Return(upstream.UserLookup{Found: true, User: json.RawMessage(`{"id":1}`)}, nil),
		d.repo.EXPECT().CreateOrder(gomock.Any(), model.NewOrder{
			UserID: 1, Item: "widget", Amount: 10, Status: "created", CreatedAt: fixedNow.Truncate(time.Second),
		}).Return(want, nil),
		d.notifier.EXPECT().SendNotification(gomock.Any(), int64(1), int64(1), "Order #1 created for user #1.").
			Return(upstream.Delivered()),
	)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		require.Equal(t, events.OrderCreated, e.Type)
		require.Equal(t, int64(1), e.OrderID)
		return nil
	})

	got, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":1,"item":"widget","amount":10}`))
	require.NoError(t, err)
	require.Equal(t, model.CreatedOrder{Order: want, NotificationSent: true}, got)
}

func TestOrders_CreateOrder_NotificationFailureKeepsOrder(t *testing.T) {
	svc, d := newOrders(t)
	want := stored(5)

	d.users.EXPECT().CheckUserExists(gomock.Any(), int64(1)).Return(upstream.UserLookup{Found: true}, nil)
	d.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(want, nil)
	d.notifier.EXPECT().SendNotification(gomock.Any(), int64(1), int64(5), gomock.Any()).
		Return(upstream.NotDelivered("Unexpected status 500: boom"))
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":1,"item":"widget","amount":10}`))
	require.NoError(t, err)
	require.Equal(t, want, got.Order)
	require.False(t, got.NotificationSent)
	require.Equal(t, "Unexpected status 500: boom", got.NotificationError)
}

func TestOrders_CreateOrder_EventFailureIgnored(t *testing.T) {
	svc, d := newOrders(t)

	d.users.EXPECT().CheckUserExists(gomock.Any(), int64(1)).Return(upstream.UserLookup{Found: true}, nil)
	d.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(stored(2), nil)
	d.notifier.EXPECT().SendNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(upstream.Delivered())
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":1,"item":"widget","amount":10}`))
	require.NoError(t, err)
	require.True(t, got.NotificationSent)
}

func TestOrders_CreateOrder_ValidationBeforeAnyCall(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{`{"item":"widget","amount":10}`, "Fields 'user_id', 'item', and 'amount' are required."},
		{`{"user_id":1,"item":"   ","amount":10}`, "Fields 'user_id', 'item', and 'amount' are required."},
		{`{"user_id":"abc","item":"widget","amount":10}`, "Field 'user_id' must be an integer."},
		{`{"user_id":1,"item":"widget","amount":"ten"}`, "Field 'amount' must be an integer."},
		{`{"user_id":1,"item":"widget","amount":0}`, "Field 'amount' must be > 0."},
		{`{"user_id":1,"item":"widget","amount":-5}`, "Field 'amount' must be > 0."},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			svc, _ := newOrders(t)

			_, err := svc.CreateOrder(context.Background(), createReq(tt.body))
			var v *apperr.ValidationError
			require.True(t, errors.As(err, &v))
			require.Equal(t, tt.msg, v.Message)
		})
	}
}

func TestOrders_CreateOrder_UserMissing(t *testing.T) {
	svc, d := newOrders(t)
	d.users.EXPECT().CheckUserExists(gomock.Any(), int64(9)).Return(upstream.UserLookup{Found: false}, nil)

	_, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":9,"item":"widget","amount":1}`))
	var v *apperr.ValidationError
	require.True(t, errors.As(err, &v))
	require.Equal(t, "User does not exist.", v.Message)
}

func TestOrders_CreateOrder_UpstreamErrorsPropagate(t *testing.T) {
	for _, upErr := range []error{
		apperr.Unavailable(upstream.UserService, errors.New("connection refused")),
		apperr.BadResponse(upstream.UserService, 500, "oops"),
	} {
		svc, d := newOrders(t)
		d.users.EXPECT().CheckUserExists(gomock.Any(), int64(1)).Return(upstream.UserLookup{}, upErr)

		_, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":1,"item":"widget","amount":1}`))
		require.Same(t, upErr, err)
	}
}

func TestOrders_CreateOrder_StoreError(t *testing.T) {
	svc, d := newOrders(t)
	dbErr := errors.New("db gone")
	d.users.EXPECT().CheckUserExists(gomock.Any(), int64(1)).Return(upstream.UserLookup{Found: true}, nil)
	d.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(model.Order{}, dbErr)

	_, err := svc.CreateOrder(context.Background(), createReq(`{"user_id":1,"item":"widget","amount":1}`))
	require.ErrorIs(t, err, dbErr)
}

func TestOrders_GetOrder(t *testing.T) {
	svc, d := newOrders(t)
	d.repo.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(stored(1), true, nil)
	d.repo.EXPECT().GetOrder(gomock.Any(), int64(2)).Return(model.Order{}, false, nil)

	got, err := svc.GetOrder(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, stored(1), got)

	_, err = svc.GetOrder(context.Background(), 2)
	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "Order not found.", nf.Message)
}

func TestOrders_ListOrders(t *testing.T) {
	svc, d := newOrders(t)
	d.repo.EXPECT().ListOrders(gomock.Any()).Return([]model.Order{stored(2), stored(1)}, nil)

	got, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestOrders_UpdateOrder_MissingBeatsValidation(t *testing.T) {
	svc, d := newOrders(t)
	d.repo.EXPECT().GetOrder(gomock.Any(), int64(3)).Return(model.Order{}, false, nil)

	_, err := svc.UpdateOrder(context.Background(), 3, updateReq(`{"amount":-1}`))
	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestOrders_UpdateOrder_InvalidLeavesRowUntouched(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{`{}`, "No updatable fields provided."},
		{`{"status":"  "}`, "Field 'status' cannot be empty."},
		{`{"status":"paid","amount":0}`, "Field 'amount' must be > 0."},
		{`{"item":"","amount":0}`, "Field 'item' cannot be empty."},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			svc, d := newOrders(t)
			d.repo.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(stored(1), true, nil)

			_, err := svc.UpdateOrder(context.Background(), 1, updateReq(tt.body))
			var v *apperr.ValidationError
			require.True(t, errors.As(err, &v))
			require.Equal(t, tt.msg, v.Message)
		})
	}
}

func TestOrders_UpdateOrder_AppliesFields(t *testing.T) {
	svc, d := newOrders(t)
	updated := stored(1)
	updated.Status = "shipped"
	updated.Amount = 4

	status, amount := "shipped", int64(4)
	d.repo.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(stored(1), true, nil)
	d.repo.EXPECT().UpdateOrder(gomock.Any(), int64(1), model.OrderUpdate{Status: &status, Amount: &amount}).
		Return(updated, true, nil)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		require.Equal(t, events.OrderUpdated, e.Type)
		require.Equal(t, "shipped", e.Order.Status)
		return nil
	})

	got, err := svc.UpdateOrder(context.Background(), 1, updateReq(`{"status":"shipped","amount":4}`))
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestOrders_DeleteOrder(t *testing.T) {
	svc, d := newOrders(t)
	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(1)).Return(stored(1), true, nil)
	d.repo.EXPECT().DeleteOrder(gomock.Any(), int64(2)).Return(model.Order{}, false, nil)
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		require.Equal(t, events.OrderDeleted, e.Type)
		require.Equal(t, int64(1), e.OrderID)
		require.Equal(t, int64(1), e.UserID)
		require.Nil(t, e.Order)
		return nil
	})

	require.NoError(t, svc.DeleteOrder(context.Background(), 1))

	err := svc.DeleteOrder(context.Background(), 2)
	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
}
