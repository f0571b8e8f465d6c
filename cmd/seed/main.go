// Command seed fills a running deployment with fake users and orders through
// the public HTTP APIs, so every order goes through the full create path.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"demo/orderflow/internal/config"
	"demo/orderflow/internal/gen"
	"demo/orderflow/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadSeed(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(2)
	}
	log, err := logger.New(logger.Options{Service: "seed", Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen.SeedOnce()
	hc := &http.Client{Timeout: 5 * time.Second}

	users, orders := 0, 0
	for i := 0; i < cfg.Users && ctx.Err() == nil; i++ {
		var u struct {
			ID int64 `json:"id"`
		}
		if err := post(ctx, hc, cfg.UserServiceURL, "users", gen.UserRequest(), &u); err != nil {
			log.Error("create user", zap.Error(err))
			continue
		}
		users++

		for j := 0; j < cfg.OrdersPerUser; j++ {
			var o struct {
				ID               int64  `json:"id"`
				NotificationSent bool   `json:"notification_sent"`
				NotificationErr  string `json:"notification_error"`
			}
			if err := post(ctx, hc, cfg.OrderServiceURL, "orders", gen.OrderRequest(u.ID), &o); err != nil {
				log.Error("create order", zap.Int64("user_id", u.ID), zap.Error(err))
				continue
			}
			orders++
			log.Info("produced order",
				zap.Int64("order_id", o.ID), zap.Int64("user_id", u.ID),
				zap.Bool("notification_sent", o.NotificationSent), zap.String("notification_error", o.NotificationErr))
		}
	}
	log.Info("done", zap.Int("users", users), zap.Int("orders", orders))
}

func post(ctx context.Context, hc *http.Client, base, path string, body, out any) error {
	endpoint, err := url.JoinPath(base, path)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("POST %s: status %d: %s", endpoint, resp.StatusCode, data)
	}
	return json.Unmarshal(data, out)
}
