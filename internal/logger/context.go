package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const loggerKey contextKey = "logger"

// FromContext retrieves the request logger from the context, falling back to
// the global zap logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}

// WithContext adds the logger to the context.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContextOr retrieves the request logger from the context, falling back
// to l.
func FromContextOr(ctx context.Context, l *zap.Logger) *zap.Logger {
	if cl, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return cl
	}
	return l
}
