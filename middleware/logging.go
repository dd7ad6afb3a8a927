package middleware

import (
	"log/slog"
	"time"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

// Logging logs each dispatch with the method, transport label, duration, and
// outcome. A nil logger falls back to slog.Default.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next rpc.Handler) rpc.Handler {
		return func(ctx *rpc.Context) (value.Value, error) {
			start := time.Now()
			result, err := next(ctx)
			duration := time.Since(start)

			if err != nil {
				logger.Error("rpc call failed",
					"method", ctx.Method(),
					"transport", ctx.Transport(),
					"duration", duration,
					"error", err,
				)
				return result, err
			}

			logger.Info("rpc call",
				"method", ctx.Method(),
				"transport", ctx.Transport(),
				"duration", duration,
			)
			return result, nil
		}
	}
}
