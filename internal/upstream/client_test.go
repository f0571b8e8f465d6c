package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/upstream"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(userURL, notifyURL string, timeout time.Duration) *upstream.Client {
	return upstream.New(userURL, notifyURL, timeout, zap.NewNop(),
		upstream.WithHTTPClient(&http.Client{Timeout: timeout}))
}

func TestCheckUserExists_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Ada"}`))
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "", time.Second).CheckUserExists(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, got.Found)
	require.JSONEq(t, `{"id":1,"name":"Ada"}`, string(got.User))
}

func TestCheckUserExists_Absent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	got, err := newClient(srv.URL, "", time.Second).CheckUserExists(context.Background(), 2)
	require.NoError(t, err)
	require.False(t, got.Found)
}

func TestCheckUserExists_UnexpectedStatus(t *testing.T) {
	long := strings.Repeat("x", 1500)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "", time.Second).CheckUserExists(context.Background(), 1)

	var bad *apperr.UpstreamBadResponseError
	require.True(t, errors.As(err, &bad))
	require.Equal(t, upstream.UserService, bad.Service)
	require.Equal(t, http.StatusInternalServerError, bad.StatusCode)
	require.Len(t, bad.Body, apperr.MaxBodyExcerpt)
}

func TestCheckUserExists_MalformedBody(t *testing.T) {
	for _, body := range []string{`not json`, `[1,2]`, `null`, `"ok"`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		_, err := newClient(srv.URL, "", time.Second).CheckUserExists(context.Background(), 1)
		srv.Close()

		var bad *apperr.UpstreamBadResponseError
		require.True(t, errors.As(err, &bad), body)
		require.Equal(t, http.StatusOK, bad.StatusCode)
		require.Equal(t, body, bad.Body)
	}
}

func TestCheckUserExists_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newClient(addr, "", time.Second).CheckUserExists(context.Background(), 1)

	var unavailable *apperr.UpstreamUnavailableError
	require.True(t, errors.As(err, &unavailable))
	require.Equal(t, upstream.UserService, unavailable.Service)
	require.NotEmpty(t, unavailable.Details)
}

func TestCheckUserExists_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := newClient(srv.URL, "", 50*time.Millisecond).CheckUserExists(context.Background(), 1)

	var unavailable *apperr.UpstreamUnavailableError
	require.True(t, errors.As(err, &unavailable))
}

func TestCheckUserExists_IgnoresCallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":3}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := newClient(srv.URL, "", time.Second).CheckUserExists(ctx, 3)
	require.NoError(t, err)
	require.True(t, got.Found)
}

func TestSendNotification_Payload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/notify", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	d := newClient("", srv.URL, time.Second).SendNotification(context.Background(), 1, 7, "Order #7 created for user #1.")
	require.Equal(t, upstream.Delivered(), d)
	require.Equal(t, map[string]any{"user_id": float64(1), "order_id": float64(7), "message": "Order #7 created for user #1."}, got)
}

func TestSendNotification_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		delivered bool
		errText   string
	}{
		{name: "ok", status: http.StatusOK, delivered: true},
		{name: "created", status: http.StatusCreated, delivered: true},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", errText: "Unexpected status 500: boom"},
		{name: "bad request", status: http.StatusBadRequest, body: strings.Repeat("y", 600), errText: "Unexpected status 400: " + strings.Repeat("y", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			d := newClient("", srv.URL, time.Second).SendNotification(context.Background(), 1, 1, "m")
			require.Equal(t, tt.delivered, d.Delivered)
			require.Equal(t, tt.errText, d.Error)
		})
	}
}

func TestSendNotification_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	d := newClient("", addr, time.Second).SendNotification(context.Background(), 1, 1, "m")
	require.False(t, d.Delivered)
	require.NotEmpty(t, d.Error)
}
