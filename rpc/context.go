package rpc

import "github.com/mnehpets/webrpc/value"

// Context is the read-only view of one call passed to its handler: method
// name, params, id, transport label, and optional transport metadata.
//
// A Context borrows the request's data and lives only for the duration of
// one handler invocation; handlers must not retain it.
type Context struct {
	method    string
	params    value.Value
	id        value.Value
	transport string
	meta      map[string]string
}

// Method returns the RPC method name (e.g. "user.get").
func (c *Context) Method() string { return c.method }

// Params returns the call's parameters payload (null when absent).
func (c *Context) Params() value.Value { return c.params }

// ID returns the request id (null when absent).
func (c *Context) ID() value.Value { return c.id }

// Transport returns the transport label supplied at dispatch (e.g. "http",
// "websocket", "p2p"); empty when the transport did not label itself.
func (c *Context) Transport() string { return c.transport }

// HasID reports whether the call carries an id.
func (c *Context) HasID() bool { return !c.id.IsNull() }

// ParamsIsObject reports whether params is an object.
func (c *Context) ParamsIsObject() bool { return c.params.IsObject() }

// ParamsIsArray reports whether params is an array.
func (c *Context) ParamsIsArray() bool { return c.params.IsArray() }

// Meta returns the metadata value for key, or "" when no metadata was
// supplied or the key is absent. Metadata is passed through opaquely from
// the transport; this layer never interprets it.
func (c *Context) Meta(key string) string {
	if c.meta == nil {
		return ""
	}
	return c.meta[key]
}
