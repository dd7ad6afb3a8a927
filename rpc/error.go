package rpc

import "github.com/mnehpets/webrpc/value"

// Stable machine-readable error codes. Callers branch on Code, never on
// Message text.
const (
	CodeParseError     = "PARSE_ERROR"
	CodeInvalidParams  = "INVALID_PARAMS"
	CodeMethodNotFound = "METHOD_NOT_FOUND"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Error is a structured RPC failure. Errors are values returned as part of a
// response, never a thrown control transfer.
type Error struct {
	// Code is machine-readable and stable (e.g. "METHOD_NOT_FOUND").
	Code string
	// Message is human-readable.
	Message string
	// Details optionally carries structured data; null when absent.
	Details value.Value
}

func (e *Error) Error() string { return e.Message }

// NewError creates an error with the given code and message and no details.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewMethodNotFoundError reports that no handler is registered for method.
func NewMethodNotFoundError(method string) *Error {
	return &Error{
		Code:    CodeMethodNotFound,
		Message: "RPC method not found",
		Details: value.NewObject().Set("method", value.String(method)).Value(),
	}
}

// NewInvalidParamsError reports a schema violation in a request or response.
func NewInvalidParamsError(reason string) *Error {
	return &Error{
		Code:    CodeInvalidParams,
		Message: "Invalid RPC parameters",
		Details: value.NewObject().Set("reason", value.String(reason)).Value(),
	}
}

// NewParseError reports a malformed envelope or batch shape.
func NewParseError(reason string) *Error {
	return &Error{
		Code:    CodeParseError,
		Message: "Failed to parse RPC payload",
		Details: value.NewObject().Set("reason", value.String(reason)).Value(),
	}
}

// NewInternalError reports an internal failure. It carries only the
// caller-supplied message, no structured details.
func NewInternalError(msg string) *Error {
	return &Error{Code: CodeInternalError, Message: msg}
}

// Valid reports whether the error carries a non-empty code.
func (e *Error) Valid() bool { return e != nil && e.Code != "" }

// HasDetails reports whether the error carries structured details.
func (e *Error) HasDetails() bool { return e != nil && !e.Details.IsNull() }

// ToValue serializes the error to its object representation. The details
// field is omitted entirely when absent, not emitted as null.
func (e *Error) ToValue() value.Value {
	o := value.NewObject().
		Set("code", value.String(e.Code)).
		Set("message", value.String(e.Message))
	if !e.Details.IsNull() {
		o.Set("details", e.Details)
	}
	return o.Value()
}

// ParseError reads an Error from its object representation. Parsing an error
// can itself fail; that failure is reported as an *Error of code PARSE_ERROR.
func ParseError(root value.Value) (*Error, error) {
	obj, ok := root.AsObject()
	if !ok {
		return nil, NewParseError("error must be an object")
	}

	code, hasCode := obj.Get("code")
	msg, hasMsg := obj.Get("message")
	if !hasCode || !hasMsg {
		return nil, NewParseError("error object must contain code and message")
	}

	codeStr, codeOK := code.AsString()
	msgStr, msgOK := msg.AsString()
	if !codeOK || !msgOK {
		return nil, NewParseError("code and message must be strings")
	}
	if codeStr == "" {
		return nil, NewParseError("code must not be empty")
	}

	out := &Error{Code: codeStr, Message: msgStr}
	if details, ok := obj.Get("details"); ok {
		out.Details = details
	}
	return out, nil
}

// toError normalizes handler errors: an *Error keeps its code, anything else
// becomes an internal error carrying the original message. A typed-nil
// *Error inside a non-nil error interface has no message to carry (calling
// its Error method would dereference nil), so it maps to a generic
// INTERNAL_ERROR.
func toError(err error) *Error {
	if rpcErr, ok := err.(*Error); ok {
		if rpcErr == nil {
			return NewInternalError("internal error")
		}
		return rpcErr
	}
	return NewInternalError(err.Error())
}
