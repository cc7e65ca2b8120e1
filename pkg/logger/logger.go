package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a sugared zap logger for the named service.
// Output goes to stdout with ISO8601 timestamps.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stdout"}
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build(zap.WithCaller(true))
	if err != nil {
		panic(err)
	}

	return log.Sugar()
}
