package doc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/cfgtree/cfgtree/format"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// Decode decodes a single document of format f.
func Decode(data []byte, f format.Format) (any, error) {
	switch f {
	case format.JSONFormat:
		return DecodeJSON(data)
	case format.YAMLFormat:
		return DecodeYAML(data)
	case format.CBORFormat:
		return DecodeCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrDecode, format.ErrBadFormat, f)
	}
}

// DecodeReader reads all of r and decodes it as format f.
func DecodeReader(r io.Reader, f format.Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// DecodeJSON decodes a JSON document. Comments and trailing commas, as
// found in .jsonc files, are accepted.
func DecodeJSON(data []byte) (any, error) {
	data = jsonc.ToJSON(data)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", kt)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(k, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", x)
		}
	case json.Number:
		return Number(x), nil
	case float64:
		return FromFloat64(x), nil
	case string, bool, nil:
		return x, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

// DecodeYAML decodes the first document of a YAML stream.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return fromYAML(v), nil
}

func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range x {
			obj.Set(keyString(item.Key), fromYAML(item.Value))
		}
		return obj
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, fromYAML(x[k]))
		}
		return obj
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = fromYAML(x[i])
		}
		return res
	default:
		return fromScalar(v)
	}
}

// DecodeCBOR decodes a CBOR data item. CBOR maps carry no meaningful
// order, so object members come out sorted by key.
func DecodeCBOR(data []byte) (any, error) {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return fromCBOR(v), nil
}

func fromCBOR(v any) any {
	switch x := v.(type) {
	case map[any]any:
		keys := make([]string, 0, len(x))
		byKey := make(map[string]any, len(x))
		for k, kv := range x {
			ks := keyString(k)
			keys = append(keys, ks)
			byKey[ks] = kv
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, fromCBOR(byKey[k]))
		}
		return obj
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = fromCBOR(x[i])
		}
		return res
	default:
		return fromScalar(v)
	}
}

func fromScalar(v any) any {
	switch x := v.(type) {
	case nil, string, bool, Number:
		return x
	case int:
		return FromInt64(int64(x))
	case int64:
		return FromInt64(x)
	case uint64:
		if x > math.MaxInt64 {
			return Number(strconv.FormatUint(x, 10))
		}
		return FromInt64(int64(x))
	case float32:
		return FromFloat64(float64(x))
	case float64:
		return FromFloat64(x)
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
