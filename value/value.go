// Package value implements the generic structured value consumed by the rpc
// envelopes: a closed tagged union over null, bool, int64, string, array,
// and object, with object member order preserved.
//
// Values are immutable once constructed; objects are mutated only through
// their builder methods while being assembled. The zero Value is null.
package value

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is one JSON-like value. Exactly one variant is active, selected by
// its Kind; type predicates and typed accessors never panic on mismatch.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null value. Equivalent to the zero Value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ArrayOf returns an array value holding elems in order. The slice is
// retained, not copied.
func ArrayOf(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsInt() bool    { return v.kind == KindInt }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean payload, or false if v is not a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload, or false if v is not an int.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsString returns the string payload, or false if v is not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the element slice, or false if v is not an array.
// The slice is shared with the value and must not be mutated.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the backing object, or false if v is not an object.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// IntOr returns the integer payload, or def if v is not an int.
func (v Value) IntOr(def int64) int64 {
	if v.kind != KindInt {
		return def
	}
	return v.i
}

// StringOr returns the string payload, or def if v is not a string.
func (v Value) StringOr(def string) string {
	if v.kind != KindString {
		return def
	}
	return v.s
}

// Get looks up key when v is an object. The second return is false when v is
// not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// Len returns the number of elements for arrays, the number of members for
// objects, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Equal reports deep structural equality. Objects are equal only when they
// hold the same keys in the same order with equal values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != o.obj.Len() {
			return false
		}
		for i, key := range v.obj.keys {
			if key != o.obj.keys[i] {
				return false
			}
			if !v.obj.vals[i].Equal(o.obj.vals[i]) {
				return false
			}
		}
		return true
	}
	return false
}
