package middleware

import (
	"golang.org/x/time/rate"

	"github.com/mnehpets/webrpc/rpc"
	"github.com/mnehpets/webrpc/value"
)

// CodeRateLimited is the error code reported for calls rejected by RateLimit.
const CodeRateLimited = "RATE_LIMITED"

// RateLimit admits calls through a token bucket refilled at r tokens per
// second with the given burst. Rejected calls fail immediately with
// RATE_LIMITED; nothing blocks.
func RateLimit(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst)
	return func(next rpc.Handler) rpc.Handler {
		return func(ctx *rpc.Context) (value.Value, error) {
			if !limiter.Allow() {
				return value.Null(), rpc.NewError(CodeRateLimited, "rate limit exceeded")
			}
			return next(ctx)
		}
	}
}
