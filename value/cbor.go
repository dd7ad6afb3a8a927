package value

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// CBOR binding for Value, as a compact alternative to JSON.
//
// CBOR maps carry no member order: EncodeCBOR emits members in canonical
// (length-first) key order and DecodeCBOR stores them sorted lexicographically,
// so insertion order does not survive a CBOR round trip.

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// EncodeCBOR serializes v to CBOR.
func EncodeCBOR(v Value) ([]byte, error) {
	return cborEnc.Marshal(toPlain(v))
}

// DecodeCBOR deserializes a CBOR value produced by EncodeCBOR (or any CBOR
// value restricted to null/bool/int64/string/array/string-keyed map).
func DecodeCBOR(data []byte) (Value, error) {
	var raw interface{}
	if err := cborDec.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return fromPlain(raw)
}

func toPlain(v Value) interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindString:
		return v.s
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, el := range v.arr {
			out[i] = toPlain(el)
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, v.obj.Len())
		for i, key := range v.obj.keys {
			out[key] = toPlain(v.obj.vals[i])
		}
		return out
	}
	return nil
}

func fromPlain(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case int64:
		return Int(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return Value{}, fmt.Errorf("value: integer %d overflows int64", t)
		}
		return Int(int64(t)), nil
	case string:
		return String(t), nil
	case []interface{}:
		elems := make([]Value, len(t))
		for i, el := range t {
			v, err := fromPlain(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return ArrayOf(elems...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, key := range keys {
			v, err := fromPlain(t[key])
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, v)
		}
		return obj.Value(), nil
	case float64, float32:
		return Value{}, errors.New("value: non-integer numbers are not supported")
	}
	return Value{}, fmt.Errorf("value: unsupported CBOR type %T", raw)
}
