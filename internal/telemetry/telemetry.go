// Package telemetry wires the OpenTelemetry tracing and logging SDKs to an
// OTLP/HTTP collector.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo/orderflow/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	tracesPath    = "/v1/traces"
	logsPath      = "/v1/logs"
	exportTimeout = 10 * time.Second
	maxQueueSize  = 2048
)

// Shutdown flushes and stops whatever Setup started.
type Shutdown func(context.Context) error

// Setup installs the global propagator and, when cfg is enabled, the global
// tracer and logger providers. With telemetry disabled only the propagator
// is set, so trace context still flows between services.
func Setup(ctx context.Context, service string, cfg config.Telemetry) (Shutdown, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}
	if !cfg.Enabled() {
		return shutdown, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(service)),
	)
	if err != nil {
		return shutdown, fmt.Errorf("failed to create resource: %w", err)
	}

	headers := map[string]string{}
	if cfg.OTelAuthHeader != "" {
		headers["Authorization"] = cfg.OTelAuthHeader
	}

	var setupErr error

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTelEndpoint),
		otlptracehttp.WithURLPath(tracesPath),
		otlptracehttp.WithHeaders(headers),
	)
	if err != nil {
		setupErr = errors.Join(setupErr, fmt.Errorf("OTLP trace exporter: %w", err))
	} else {
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(traceExporter,
				sdktrace.WithExportTimeout(exportTimeout),
				sdktrace.WithMaxQueueSize(maxQueueSize),
			)),
		)
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	}

	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpoint(cfg.OTelEndpoint),
		otlploghttp.WithURLPath(logsPath),
		otlploghttp.WithHeaders(headers),
	)
	if err != nil {
		setupErr = errors.Join(setupErr, fmt.Errorf("OTLP log exporter: %w", err))
	} else {
		lp := sdklog.NewLoggerProvider(
			sdklog.WithResource(res),
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter,
				sdklog.WithExportTimeout(exportTimeout),
				sdklog.WithMaxQueueSize(maxQueueSize),
			)),
		)
		global.SetLoggerProvider(lp)
		shutdownFuncs = append(shutdownFuncs, lp.Shutdown)
	}

	return shutdown, setupErr
}
