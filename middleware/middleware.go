// Package middleware provides composable decoration for rpc handlers:
// logging, panic recovery, and rate limiting.
//
// Middleware wraps individual handlers before registration:
//
//	wrap := middleware.Chain(
//	    middleware.Logging(logger),
//	    middleware.Recover(logger),
//	)
//	router.Add("user.get", wrap(getUser))
package middleware

import "github.com/mnehpets/webrpc/rpc"

// Middleware wraps an rpc.Handler with additional behavior.
type Middleware func(next rpc.Handler) rpc.Handler

// Chain composes middlewares into one. The first middleware is outermost:
// Chain(a, b)(h) behaves like a(b(h)).
func Chain(middlewares ...Middleware) Middleware {
	return func(next rpc.Handler) rpc.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
