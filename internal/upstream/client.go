// Package upstream calls the user and notification services. Every call is
// bounded by one shared timeout and is never retried.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"demo/orderflow/internal/apperr"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	UserService         = "user-service"
	NotificationService = "notification-service"

	DefaultTimeout = 2 * time.Second

	notifyErrExcerpt = 500
	maxBody          = 1 << 20
)

// UserLookup is the outcome of a user existence check that reached the user
// service and got an answer it understood.
type UserLookup struct {
	Found bool
	User  json.RawMessage
}

// Delivery reports whether the notification service accepted a message.
type Delivery struct {
	Delivered bool
	Error     string
}

func Delivered() Delivery { return Delivery{Delivered: true} }

func NotDelivered(reason string) Delivery { return Delivery{Error: reason} }

type Client struct {
	userBase   string
	notifyBase string
	http       *http.Client
	log        *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client. The caller owns
// its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(userBase, notifyBase string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		userBase:   userBase,
		notifyBase: notifyBase,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckUserExists asks the user service for userID. A 404 is a definitive
// "absent"; anything the client cannot interpret is an error.
func (c *Client) CheckUserExists(ctx context.Context, userID int64) (UserLookup, error) {
	endpoint, err := url.JoinPath(c.userBase, "users", strconv.FormatInt(userID, 10))
	if err != nil {
		return UserLookup{}, fmt.Errorf("build user url: %w", err)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, endpoint, nil)
	if err != nil {
		return UserLookup{}, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("user service unreachable", zap.Int64("user_id", userID), zap.Error(err))
		return UserLookup{}, apperr.Unavailable(UserService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return UserLookup{}, apperr.Unavailable(UserService, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
			return UserLookup{}, apperr.BadResponse(UserService, resp.StatusCode, string(body))
		}
		return UserLookup{Found: true, User: json.RawMessage(body)}, nil
	case http.StatusNotFound:
		return UserLookup{Found: false}, nil
	default:
		c.log.Warn("user service bad response",
			zap.Int64("user_id", userID), zap.Int("status", resp.StatusCode))
		return UserLookup{}, apperr.BadResponse(UserService, resp.StatusCode, string(body))
	}
}

type notifyPayload struct {
	UserID  int64  `json:"user_id"`
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// SendNotification posts one message to the notification service. Failures
// are reported in the returned Delivery, never as an error.
func (c *Client) SendNotification(ctx context.Context, userID, orderID int64, message string) Delivery {
	endpoint, err := url.JoinPath(c.notifyBase, "notify")
	if err != nil {
		return NotDelivered(err.Error())
	}

	payload, err := json.Marshal(notifyPayload{UserID: userID, OrderID: orderID, Message: message})
	if err != nil {
		return NotDelivered(err.Error())
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return NotDelivered(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("notification not delivered", zap.Int64("order_id", orderID), zap.Error(err))
		return NotDelivered(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return Delivered()
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	reason := fmt.Sprintf("Unexpected status %d: %s", resp.StatusCode, apperr.Excerpt(string(body), notifyErrExcerpt))
	c.log.Warn("notification rejected", zap.Int64("order_id", orderID), zap.Int("status", resp.StatusCode))
	return NotDelivered(reason)
}
