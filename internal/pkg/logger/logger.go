package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type ctxKey struct{}

var (
	global *zap.SugaredLogger
	mu     sync.RWMutex
)

func init() {
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	global = l.Sugar()
}

// Init replaces the global logger, e.g. with a development config from main.
func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// WithRequestID returns a ctx whose log lines carry the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	mu.RLock()
	l := global
	mu.RUnlock()

	if ctx != nil {
		if requestID, ok := ctx.Value(ctxKey{}).(string); ok {
			return l.With("request_id", requestID)
		}
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromCtx(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromCtx(ctx).Error(msg)
}

func Fatal(ctx context.Context, args ...interface{}) {
	fromCtx(ctx).Fatal(args...)
}
