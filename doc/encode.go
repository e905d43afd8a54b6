package doc

import (
	"fmt"
	"io"

	"github.com/cfgtree/cfgtree/format"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("doc: cbor encoder initialization failed: " + err.Error())
	}
}

// Encode writes v to w in format f. v may be a decoded document value
// or ordinary Go data; objects keep their member order in JSON and YAML.
func Encode(w io.Writer, v any, f format.Format) error {
	d, err := Marshal(v, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// Marshal is like Encode but returns the encoded bytes.
func Marshal(v any, f format.Format) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSONFormat:
		d, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	case format.YAMLFormat:
		d, err = yaml.Marshal(toYAML(v))
	case format.CBORFormat:
		d, err = cborEnc.Marshal(Plain(v))
	default:
		err = fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return d, nil
}

// MarshalCompact encodes v as single line JSON.
func MarshalCompact(v any) ([]byte, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return d, nil
}

func toYAML(v any) any {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
		res := make(yaml.MapSlice, 0, x.Len())
		for _, k := range x.keys {
			res = append(res, yaml.MapItem{Key: k, Value: toYAML(x.vals[k])})
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = toYAML(x[i])
		}
		return res
	case Number:
		return x.Native()
	default:
		return v
	}
}
