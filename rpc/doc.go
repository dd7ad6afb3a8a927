// Package rpc provides a transport-agnostic RPC call envelope and dispatch
// core: request/response envelopes over generic values, a method registry
// with synchronous dispatch, and batch/notification orchestration.
//
// The package never touches bytes or sockets. A transport binding decodes
// its wire format into a value.Value, hands the payload to a Dispatcher,
// and sends back whatever serialized value the dispatcher produces.
//
// # Basic Usage
//
// Create a router, register handlers, and hand payloads to a dispatcher:
//
//	router := rpc.NewRouter()
//	router.Add("math.add", func(ctx *rpc.Context) (value.Value, error) {
//	    a, _ := ctx.Params().Get("a")
//	    b, _ := ctx.Params().Get("b")
//	    return value.NewObject().Set("sum", value.Int(a.IntOr(0)+b.IntOr(0))).Value(), nil
//	})
//
//	d := rpc.NewDispatcher(router)
//	out, ok := d.Handle(payload, "http", nil)
//	if ok {
//	    // serialize out and send it back
//	}
//
// # Handlers
//
// A handler receives the read-only Context for one call and returns either a
// success payload or an error. Returning an *Error keeps its code; any other
// error is reported as INTERNAL_ERROR with the error text as the message.
// Handlers validate their own params shape.
//
// # Requests, notifications, and batches
//
// A request whose id is null (or absent) is a notification: it is dispatched
// for its side effects but never answered. An array payload is a batch,
// processed item by item in input order; one malformed item contributes an
// error entry and never aborts the rest. A batch consisting entirely of
// notifications produces no output at all.
//
// Two array-level failures are answered with a single bare error object
// rather than an array: a batch payload that is not an array, and an empty
// batch. Per-item failures are always array elements. This asymmetry is part
// of the wire contract.
//
// # Errors
//
// Failures are values: every malformed or failed call yields a structured
// error object with a stable machine-readable code (PARSE_ERROR,
// INVALID_PARAMS, METHOD_NOT_FOUND, INTERNAL_ERROR). Nothing in this package
// panics on malformed input.
//
// # Concurrency
//
// Dispatch is synchronous on the caller's goroutine; there is no internal
// scheduling, timeout, or cancellation. Registration and dispatch may be
// called from multiple goroutines; the usual discipline is to register all
// methods up front and treat the router as read-only afterwards.
package rpc
