package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options holds logger configuration.
type Options struct {
	Level       string
	Environment string
	ServiceName string
}

// New builds a zap logger. Production uses JSON output with ISO8601
// timestamps; any other environment gets colored console output.
func New(opts Options) (*zap.Logger, error) {
	level := ParseLevel(opts.Level)
	fields := zap.Fields(
		zap.String("service", opts.ServiceName),
		zap.String("environment", opts.Environment),
	)

	if opts.Environment == "production" {
		prodConfig := zap.NewProductionConfig()
		prodConfig.Level = zap.NewAtomicLevelAt(level)
		prodConfig.EncoderConfig.TimeKey = "timestamp"
		prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return prodConfig.Build(fields)
	}

	devConfig := zap.NewDevelopmentConfig()
	devConfig.Level = zap.NewAtomicLevelAt(level)
	devConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return devConfig.Build(fields)
}

// ParseLevel maps debug|info|warn|error to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
