package doc

import (
	"bytes"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Number is a decoded numeric scalar in its source text form.
type Number string

func (n Number) String() string { return string(n) }

func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// IsInteger reports whether n is written without fraction or exponent.
func (n Number) IsInteger() bool {
	_, err := n.Int64()
	return err == nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

// Native returns n as an int64 when it is an integer in range and as a
// float64 otherwise.
func (n Number) Native() any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil {
		return string(n)
	}
	return f
}

// FromInt64 and FromFloat64 build Numbers from Go values.
func FromInt64(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

func FromFloat64(f float64) Number {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return Number(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Object is a string keyed map which remembers insertion order.
type Object struct {
	keys []string
	vals map[string]any
}

func NewObject() *Object {
	return &Object{vals: map[string]any{}}
}

// Set adds or replaces a member. A replaced member keeps its original
// position.
func (o *Object) Set(k string, v any) {
	if o.vals == nil {
		o.vals = map[string]any{}
	}
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *Object) Get(k string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[k]
	return v, ok
}

func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Keys returns the member names in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	res := make([]string, len(o.keys))
	copy(res, o.keys)
	return res
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i != 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Plain converts a decoded value into ordinary Go data: objects become
// map[string]any, arrays []any and numbers int64 or float64. Values of
// other types are returned unchanged.
func Plain(v any) any {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
		res := make(map[string]any, x.Len())
		for _, k := range x.keys {
			res[k] = Plain(x.vals[k])
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = Plain(x[i])
		}
		return res
	case Number:
		return x.Native()
	default:
		return v
	}
}
