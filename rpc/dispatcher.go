package rpc

import "github.com/mnehpets/webrpc/value"

// Dispatcher orchestrates payload-level behavior on top of a Router: single
// call vs batch, notification suppression, and best-effort batch processing.
//
// The dispatcher does not own the router; the router must outlive it.
type Dispatcher struct {
	router *Router
}

// NewDispatcher returns a dispatcher bound to router.
func NewDispatcher(router *Router) *Dispatcher {
	return &Dispatcher{router: router}
}

// Handle processes one payload, a single call object or a batch array.
//
// The second return is false when there is nothing to send back: the payload
// was a notification, or a batch consisting entirely of notifications.
// Otherwise the returned value is one response object or an array of
// response objects.
func (d *Dispatcher) Handle(payload value.Value, transport string, meta map[string]string) (value.Value, bool) {
	if payload.IsArray() {
		return d.HandleBatch(payload, transport, meta)
	}

	resp := d.HandleOne(payload, transport, meta)
	if resp == nil {
		return value.Null(), false
	}
	return resp.ToValue(), true
}

// HandleOne processes a single call payload and returns its response
// envelope, or nil for a notification.
//
// A malformed envelope has no trustworthy id to echo back, so parse failures
// are answered with id null. A well-formed call without an id is dispatched
// for its side effects and never answered.
func (d *Dispatcher) HandleOne(payload value.Value, transport string, meta map[string]string) *Response {
	req, err := ParseRequest(payload)
	if err != nil {
		return Fail(value.Null(), toError(err))
	}

	if req.ID.IsNull() {
		d.router.Dispatch(req, transport, meta)
		return nil
	}

	result, err := d.router.Dispatch(req, transport, meta)
	if err != nil {
		return Fail(req.ID, toError(err))
	}
	return OK(req.ID, result)
}

// HandleBatch processes a batch payload item by item in input order.
//
// Array-level failures (non-array payload, empty batch) are answered with a
// single bare error object, not a one-element array. Per-item failures are
// array elements: a non-object item contributes a PARSE_ERROR entry with id
// null and processing continues with the next item. Notifications contribute
// nothing; if every item was a notification the second return is false.
func (d *Dispatcher) HandleBatch(payload value.Value, transport string, meta map[string]string) (value.Value, bool) {
	items, ok := payload.AsArray()
	if !ok {
		return Fail(value.Null(), NewParseError("batch must be an array")).ToValue(), true
	}
	if len(items) == 0 {
		return Fail(value.Null(), NewInvalidParamsError("batch must not be empty")).ToValue(), true
	}

	out := make([]value.Value, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			out = append(out, Fail(value.Null(), NewParseError("batch item must be an object")).ToValue())
			continue
		}

		resp := d.HandleOne(item, transport, meta)
		if resp == nil {
			continue
		}
		out = append(out, resp.ToValue())
	}

	if len(out) == 0 {
		return value.Null(), false
	}
	return value.ArrayOf(out...), true
}
