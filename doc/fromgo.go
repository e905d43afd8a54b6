package doc

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// FromGo converts ordinary Go data into decoded document values: maps
// with string keys become *Object with members sorted by key, slices and
// arrays become []any and numbers become Number. Values that are already
// document values are checked member by member. Any other type, and
// non-finite floats, fail with ErrValue.
func FromGo(v any) (any, error) {
	return fromGo(v, "")
}

func fromGo(v any, path string) (any, error) {
	switch x := v.(type) {
	case nil, string, bool:
		return x, nil
	case Number:
		if _, err := x.Float64(); err != nil {
			return nil, fmt.Errorf("%w: %s: bad number %q", ErrValue, where(path), string(x))
		}
		return x, nil
	case *Object:
		if x == nil {
			return nil, nil
		}
		obj := NewObject()
		for _, k := range x.keys {
			cv, err := fromGo(x.vals[k], join(path, k))
			if err != nil {
				return nil, err
			}
			obj.Set(k, cv)
		}
		return obj, nil
	case []any:
		res := make([]any, len(x))
		for i := range x {
			cv, err := fromGo(x[i], path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			res[i] = cv
		}
		return res, nil
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return Number(strconv.FormatUint(uint64(x), 10)), nil
	case uint8:
		return FromInt64(int64(x)), nil
	case uint16:
		return FromInt64(int64(x)), nil
	case uint32:
		return FromInt64(int64(x)), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case float32:
		return fromFloat(float64(x), path)
	case float64:
		return fromFloat(x, path)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			cv, err := fromGo(mv.Interface(), join(path, k))
			if err != nil {
				return nil, err
			}
			obj.Set(k, cv)
		}
		return obj, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		res := make([]any, rv.Len())
		for i := range res {
			cv, err := fromGo(rv.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			res[i] = cv
		}
		return res, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return fromGo(rv.Elem().Interface(), path)
	}
	return nil, fmt.Errorf("%w: %s: %T", ErrValue, where(path), v)
}

func fromFloat(f float64, path string) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s: %v", ErrValue, where(path), f)
	}
	return FromFloat64(f), nil
}

func join(path, k string) string {
	if path == "" {
		return k
	}
	return path + "." + k
}

func where(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
