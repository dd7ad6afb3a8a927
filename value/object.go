package value

// Object is a string-keyed mapping with unique keys and insertion order
// preserved. Replacing an existing key keeps its original position.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Value
}

// NewObject returns an empty object builder.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set stores v under key and returns the object for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return o
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
	return o
}

// Get returns the value stored under key. The second return is false when
// the key is absent.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Value wraps the object into a Value. The object is retained, not copied;
// it must not be mutated afterwards.
func (o *Object) Value() Value {
	return Value{kind: KindObject, obj: o}
}
