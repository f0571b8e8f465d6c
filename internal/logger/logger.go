// Package logger builds the zap logger shared by all binaries: JSON to
// stdout, optionally tee'd into the OpenTelemetry logs pipeline.
package logger

import (
	"fmt"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const scope = "demo/orderflow"

type Options struct {
	Service string
	Level   string
	// OTel tees records into the global OpenTelemetry LoggerProvider.
	OTel bool
	Out  zapcore.WriteSyncer
}

func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
	}
	out := opts.Out
	if out == nil {
		out = zapcore.Lock(os.Stdout)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), out, level)

	if opts.OTel {
		otelCore := otelzap.NewCore(scope, otelzap.WithLoggerProvider(global.GetLoggerProvider()))
		core = zapcore.NewTee(core, otelCore)
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service.name", opts.Service)),
	), nil
}
