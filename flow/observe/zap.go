package observe

import (
	"context"

	"go.uber.org/zap"

	"github.com/avollmer/coldflow/flow/core"
)

// WithZapLogging attaches hooks for type T that log the run's lifecycle
// to the supplied logger. Values are logged at debug level, the
// terminating error at error level.
func WithZapLogging[T any](ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = zap.NewNop()
	}

	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: func() {
			logger.Debug("run started")
		},
		OnValue: func(v T) {
			logger.Debug("value delivered", zap.Any("value", v))
		},
		OnError: func(err error) {
			logger.Error("run failed", zap.Error(err))
		},
		OnComplete: func() {
			logger.Debug("run finished")
		},
	})
}
