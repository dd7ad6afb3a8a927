package rpc

import (
	"sync"

	"github.com/mnehpets/webrpc/value"
)

// Handler processes one RPC call. It receives the call's Context and returns
// a success payload or an error. A returned *Error keeps its code; any other
// error is reported to the caller as INTERNAL_ERROR. Handlers validate their
// own params shape.
type Handler func(ctx *Context) (value.Value, error)

// Router maps method names to handlers and executes them synchronously on
// the caller's goroutine. It is transport-agnostic; transports live above
// this layer.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Add registers handler under name. An existing registration with the same
// name is replaced silently; last write wins.
func (r *Router) Add(name string, handler Handler) {
	r.mu.Lock()
	r.handlers[name] = handler
	r.mu.Unlock()
}

// Remove unregisters name. It returns true if a handler was removed.
func (r *Router) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; !ok {
		return false
	}
	delete(r.handlers, name)
	return true
}

// Has reports whether name is registered.
func (r *Router) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Size returns the number of registered methods.
func (r *Router) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// Dispatch routes a parsed request to its handler and returns the handler's
// outcome unchanged; the router applies no post-processing.
//
// The request must be valid (non-empty method). An unregistered method
// yields METHOD_NOT_FOUND with the method name in the details.
func (r *Router) Dispatch(req *Request, transport string, meta map[string]string) (value.Value, error) {
	if !req.Valid() {
		return value.Null(), NewInvalidParamsError("invalid rpc request")
	}

	r.mu.RLock()
	handler, ok := r.handlers[req.Method]
	r.mu.RUnlock()
	if !ok {
		return value.Null(), NewMethodNotFoundError(req.Method)
	}

	// The context borrows the request's data; nothing is copied.
	ctx := &Context{
		method:    req.Method,
		params:    req.Params,
		id:        req.ID,
		transport: transport,
		meta:      meta,
	}
	return handler(ctx)
}

// DispatchValue parses raw as a request envelope and dispatches it. A parse
// failure short-circuits without touching the registry. Batch payloads are
// handled one layer up, by the Dispatcher.
func (r *Router) DispatchValue(raw value.Value, transport string, meta map[string]string) (value.Value, error) {
	req, err := ParseRequest(raw)
	if err != nil {
		return value.Null(), err
	}
	return r.Dispatch(req, transport, meta)
}
