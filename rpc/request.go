package rpc

import "github.com/mnehpets/webrpc/value"

// Request is one RPC call as a value object, independent of any transport.
//
// Wire shape:
//
//	{
//	  "id":     <string|int|null> (optional),
//	  "method": <string>          (required),
//	  "params": <any>             (optional)
//	}
//
// A missing id marks a notification: no response is expected.
type Request struct {
	// ID is the request id; null when absent.
	ID value.Value
	// Method is the RPC method name (required, non-empty).
	Method string
	// Params is the parameters payload; null when absent. Handlers decide
	// how to interpret it.
	Params value.Value
}

// ParseRequest reads a Request from a payload value.
//
// Rules:
//   - root must be an object
//   - "method" must exist and be a non-empty string
//   - "id", if present, must be null, string, or int
//   - "params", if present, is taken verbatim
func ParseRequest(root value.Value) (*Request, error) {
	obj, ok := root.AsObject()
	if !ok {
		return nil, NewParseError("request must be an object")
	}

	m, ok := obj.Get("method")
	if !ok {
		return nil, NewInvalidParamsError("missing field: method")
	}
	method, ok := m.AsString()
	if !ok || method == "" {
		return nil, NewInvalidParamsError("method must be a non-empty string")
	}

	id := value.Null()
	if idv, ok := obj.Get("id"); ok {
		if !idv.IsNull() && !idv.IsString() && !idv.IsInt() {
			return nil, NewInvalidParamsError("id must be string, int, or null")
		}
		id = idv
	}

	params := value.Null()
	if p, ok := obj.Get("params"); ok {
		params = p
	}

	return &Request{ID: id, Method: method, Params: params}, nil
}

// HasID reports whether the request carries an id (request/response
// semantics rather than a notification).
func (r *Request) HasID() bool { return !r.ID.IsNull() }

// Valid reports whether the request has a non-empty method.
func (r *Request) Valid() bool { return r.Method != "" }

// ToValue serializes the request. The method is always emitted; id and
// params are emitted only when non-null.
func (r *Request) ToValue() value.Value {
	o := value.NewObject().Set("method", value.String(r.Method))
	if !r.ID.IsNull() {
		o.Set("id", r.ID)
	}
	if !r.Params.IsNull() {
		o.Set("params", r.Params)
	}
	return o.Value()
}

// ParamsObject returns params as an object when it is one.
func (r *Request) ParamsObject() (*value.Object, bool) { return r.Params.AsObject() }

// ParamsArray returns params as an array when it is one.
func (r *Request) ParamsArray() ([]value.Value, bool) { return r.Params.AsArray() }

// Param looks up a named parameter when params is an object. The second
// return is false when params is not an object or the key is absent.
func (r *Request) Param(key string) (value.Value, bool) {
	if obj, ok := r.Params.AsObject(); ok {
		return obj.Get(key)
	}
	return value.Value{}, false
}
