package app

import (
	"context"
	"fmt"

	"demo/orderflow/internal/config"
	"demo/orderflow/internal/logger"
	"demo/orderflow/internal/telemetry"

	"go.uber.org/zap"
)

// Observability starts telemetry and builds the service logger. A telemetry
// failure is logged and the service runs without export.
func Observability(ctx context.Context, service, level string, tel config.Telemetry) (*zap.Logger, telemetry.Shutdown, error) {
	shutdown, telErr := telemetry.Setup(ctx, service, tel)

	log, err := logger.New(logger.Options{Service: service, Level: level, OTel: tel.Enabled()})
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if telErr != nil {
		log.Error("telemetry setup incomplete", zap.Error(telErr))
	}
	return log, shutdown, nil
}
