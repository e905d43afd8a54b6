package jsonconf

import (
	"fmt"

	"github.com/cfgtree/cfgtree/doc"
	"github.com/cfgtree/cfgtree/node"
	"github.com/cfgtree/cfgtree/node/npath"
	"github.com/cfgtree/cfgtree/subst"
)

// jsonNode wraps one decoded value. Children are wrapped afresh on every
// access.
type jsonNode struct {
	cfg    *Configuration
	parent *jsonNode
	path   string
	val    any
}

var _ node.Node = (*jsonNode)(nil)

func wrap(cfg *Configuration, parent *jsonNode, path string, v any) node.Node {
	if v == nil {
		return node.NewMissing(cfg, path)
	}
	return &jsonNode{cfg: cfg, parent: parent, path: path, val: v}
}

func kindOf(v any) node.Kind {
	switch v.(type) {
	case *doc.Object:
		return node.MapKind
	case []any:
		return node.ArrayKind
	case string, doc.Number, bool:
		return node.PrimitiveKind
	default:
		return node.MissingKind
	}
}

func (n *jsonNode) Config() node.Config { return n.cfg }

func (n *jsonNode) Parent() (node.Node, error) {
	if n.parent == nil {
		return nil, nil
	}
	return n.parent, nil
}

func (n *jsonNode) Path() string      { return n.path }
func (n *jsonNode) Kind() node.Kind   { return kindOf(n.val) }
func (n *jsonNode) IsMap() bool       { return n.Kind() == node.MapKind }
func (n *jsonNode) IsArray() bool     { return n.Kind() == node.ArrayKind }
func (n *jsonNode) IsPrimitive() bool { return n.Kind() == node.PrimitiveKind }
func (n *jsonNode) IsMissing() bool   { return false }

func (n *jsonNode) Value() (any, error) {
	switch x := n.val.(type) {
	case *doc.Object:
		return n.AsMap()
	case []any:
		return n.AsSlice()
	case doc.Number:
		return x.Native(), nil
	default:
		return x, nil
	}
}

func (n *jsonNode) object() (*doc.Object, error) {
	obj, ok := n.val.(*doc.Object)
	if !ok {
		return nil, &node.NotAMapError{Path: n.path, Kind: n.Kind()}
	}
	return obj, nil
}

func (n *jsonNode) array() ([]any, error) {
	arr, ok := n.val.([]any)
	if !ok {
		return nil, &node.NotAnArrayError{Path: n.path, Kind: n.Kind()}
	}
	return arr, nil
}

func (n *jsonNode) Get(name string) (node.Node, error) {
	obj, err := n.object()
	if err != nil {
		return nil, err
	}
	v, _ := obj.Get(name)
	return wrap(n.cfg, n, npath.Join(n.path, name), v), nil
}

// Has reports whether the member is written in the document, even as
// null.
func (n *jsonNode) Has(name string) (bool, error) {
	obj, err := n.object()
	if err != nil {
		return false, err
	}
	return obj.Has(name), nil
}

func (n *jsonNode) Names() ([]string, error) {
	obj, err := n.object()
	if err != nil {
		return nil, err
	}
	return obj.Keys(), nil
}

func (n *jsonNode) Size() (int, error) {
	arr, err := n.array()
	if err != nil {
		return 0, err
	}
	return len(arr), nil
}

func (n *jsonNode) Index(i int) (node.Node, error) {
	arr, err := n.array()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(arr) {
		return nil, &node.IndexOutOfRangeError{Path: n.path, Index: i, Size: len(arr)}
	}
	return wrap(n.cfg, n, npath.JoinIndex(n.path, i), arr[i]), nil
}

// scalar returns the primitive value in the form the node.Conv
// functions take.
func (n *jsonNode) scalar(want string) (any, error) {
	switch x := n.val.(type) {
	case string, bool:
		return x, nil
	case doc.Number:
		return x.Native(), nil
	default:
		return nil, &node.NoSuchValueError{Path: n.path, Kind: n.Kind(), Want: want}
	}
}

func (n *jsonNode) AsInt() (int, error) {
	v, err := n.scalar("int")
	if err != nil {
		return 0, err
	}
	return node.ConvInt(n.path, v)
}

func (n *jsonNode) AsInt64() (int64, error) {
	if num, ok := n.val.(doc.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i, nil
		}
	}
	v, err := n.scalar("int64")
	if err != nil {
		return 0, err
	}
	return node.ConvInt64(n.path, v)
}

func (n *jsonNode) AsFloat64() (float64, error) {
	v, err := n.scalar("float64")
	if err != nil {
		return 0, err
	}
	return node.ConvFloat64(n.path, v)
}

func (n *jsonNode) AsBool() (bool, error) {
	v, err := n.scalar("bool")
	if err != nil {
		return false, err
	}
	return node.ConvBool(n.path, v)
}

func (n *jsonNode) AsString() (string, error) {
	var raw string
	switch x := n.val.(type) {
	case string:
		raw = x
	case doc.Number:
		return x.String(), nil
	case bool:
		return node.ConvString(n.path, x)
	default:
		return "", &node.NoSuchValueError{Path: n.path, Kind: n.Kind(), Want: "string"}
	}
	s, err := subst.Replace(raw, n.cfg.Lookup)
	if err != nil {
		return "", fmt.Errorf("%s: %w", n.path, err)
	}
	return s, nil
}

// AsReference resolves the string value as a path relative to this
// node; a reference to an absolute target starts with "/".
func (n *jsonNode) AsReference() (node.Node, error) {
	if !n.IsPrimitive() {
		return nil, &node.NoSuchValueError{Path: n.path, Kind: n.Kind(), Want: "reference"}
	}
	ref, err := n.AsString()
	if err != nil {
		return nil, err
	}
	return n.Traverse(ref)
}

func (n *jsonNode) AsMap() (map[string]any, error) {
	obj, err := n.object()
	if err != nil {
		return nil, err
	}
	return doc.Plain(obj).(map[string]any), nil
}

func (n *jsonNode) AsSlice() ([]any, error) {
	arr, err := n.array()
	if err != nil {
		return nil, err
	}
	return doc.Plain(arr).([]any), nil
}

func (n *jsonNode) Traverse(path string) (node.Node, error) {
	return node.Traverse(n, path)
}

func (n *jsonNode) String() string {
	return node.Dump(n)
}
