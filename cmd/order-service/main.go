package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"demo/orderflow/internal/app"
	"demo/orderflow/internal/config"
	"demo/orderflow/internal/events"
	"demo/orderflow/internal/httpapi"
	"demo/orderflow/internal/service"
	"demo/orderflow/internal/store"
	"demo/orderflow/internal/upstream"

	"go.uber.org/zap"
)

const serviceName = "order-service"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadOrderService(os.Args[1:])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, shutdownTelemetry, err := app.Observability(ctx, serviceName, cfg.LogLevel, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Error("telemetry shutdown", zap.Error(err))
		}
		_ = log.Sync()
	}()

	if err := store.Migrate(cfg.DSN, store.OrdersSchema); err != nil {
		return err
	}
	pool, err := store.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	pub, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("close event publisher", zap.Error(err))
		}
	}()

	client := upstream.New(cfg.UserServiceURL, cfg.NotificationServiceURL, cfg.HTTPTimeout(), log)
	svc := service.NewOrders(store.New(pool), client, client, pub, log)

	log.Info("starting",
		zap.String("user_service", cfg.UserServiceURL),
		zap.String("notification_service", cfg.NotificationServiceURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout()),
		zap.String("events", cfg.Backend),
	)
	return app.ListenAndServe(ctx, cfg.Addr(), httpapi.NewOrderRouter(svc, log), log)
}
