package middleware

import (
	"log/slog"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

// Recover converts a handler panic into an INTERNAL_ERROR result, logging
// the panic value. The router itself applies no exception translation, so
// install this on handlers that may panic. A nil logger falls back to
// slog.Default.
func Recover(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next rpc.Handler) rpc.Handler {
		return func(ctx *rpc.Context) (result value.Value, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("rpc handler panic",
						"method", ctx.Method(),
						"panic", r,
					)
					result = value.Null()
					err = rpc.NewInternalError("internal error")
				}
			}()
			return next(ctx)
		}
	}
}
