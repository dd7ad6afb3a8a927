package rpc

import "github.com/mnehpets/webrpc/value"

// Response is the outcome of one RPC call: a success payload or a structured
// error, never both.
//
// Wire shapes:
//
//	{ "id": <id|null>, "result": <any> }
//	{ "id": <id|null>, "error": { "code": "...", "message": "...", "details"?: <any> } }
type Response struct {
	// ID echoes the request id; may be null.
	ID value.Value
	// Result is the success payload; meaningful only when HasError is false.
	Result value.Value
	// Err is the failure; meaningful only when HasError is true.
	Err *Error
	// HasError selects the active branch.
	HasError bool
}

// OK builds a success response.
func OK(id, result value.Value) *Response {
	return &Response{ID: id, Result: result}
}

// Fail builds an error response. A nil err is normalized to INTERNAL_ERROR
// so the envelope always serializes.
func Fail(id value.Value, err *Error) *Response {
	if err == nil {
		err = NewInternalError("internal error")
	}
	return &Response{ID: id, Err: err, HasError: true}
}

// IsNotification reports whether the id is null.
func (r *Response) IsNotification() bool { return r.ID.IsNull() }

// Ok reports whether the response carries a result rather than an error.
func (r *Response) Ok() bool { return !r.HasError }

// ToValue serializes the response: {id, result} on success, {id, error} on
// failure. The id is emitted even when null.
func (r *Response) ToValue() value.Value {
	if r.HasError {
		return value.NewObject().
			Set("id", r.ID).
			Set("error", r.Err.ToValue()).
			Value()
	}
	return value.NewObject().
		Set("id", r.ID).
		Set("result", r.Result).
		Value()
}

// ParseResponse reads a Response from a payload value.
//
// Rules:
//   - root must be an object
//   - "id", if present, must be null, string, or int
//   - exactly one of "result" and "error" must be present
//   - "error" is validated by ParseError; a malformed error sub-object
//     surfaces that inner failure directly
func ParseResponse(root value.Value) (*Response, error) {
	obj, ok := root.AsObject()
	if !ok {
		return nil, NewParseError("response must be an object")
	}

	id := value.Null()
	if idv, ok := obj.Get("id"); ok {
		if !idv.IsNull() && !idv.IsString() && !idv.IsInt() {
			return nil, NewInvalidParamsError("id must be string, int, or null")
		}
		id = idv
	}

	result, hasResult := obj.Get("result")
	errVal, hasErr := obj.Get("error")

	if hasResult && hasErr {
		return nil, NewInvalidParamsError("response cannot contain both result and error")
	}
	if !hasResult && !hasErr {
		return nil, NewInvalidParamsError("response must contain result or error")
	}

	if hasErr {
		inner, err := ParseError(errVal)
		if err != nil {
			return nil, err
		}
		return Fail(id, inner), nil
	}
	return OK(id, result), nil
}
