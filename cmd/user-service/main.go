package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"demo/orderflow/internal/app"
	"demo/orderflow/internal/config"
	"demo/orderflow/internal/httpapi"
	"demo/orderflow/internal/service"
	"demo/orderflow/internal/store"

	"go.uber.org/zap"
)

const serviceName = "user-service"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadUserService(os.Args[1:])
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

	if err := store.Migrate(cfg.DSN, store.UsersSchema); err != nil {
		return err
	}
	pool, err := store.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := service.NewUsers(store.New(pool), log)
	return app.ListenAndServe(ctx, cfg.Addr(), httpapi.NewUserRouter(svc, log), log)
}
