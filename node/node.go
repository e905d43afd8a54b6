package node

// Config is what a node needs from the configuration that owns it.
type Config interface {
	// Root returns the root node of the tree.
	Root() Node
	// Lookup returns the value of a substitution variable.
	Lookup(name string) (string, bool)
}

// Node is one element of a configuration tree.
//
// Exactly one of IsMap, IsArray, IsPrimitive and IsMissing is true for
// any node, matching Kind. Operations applied to the wrong variant fail
// with NotAMapError, NotAnArrayError or NoSuchValueError; every
// operation on a Missing node other than Config, Path, Kind, the Is
// predicates, Get, Has, AsMap and Traverse fails with MissingNodeError.
type Node interface {
	Config() Config
	// Parent returns the enclosing node, or nil for the root.
	Parent() (Node, error)
	// Path is the dotted and bracketed position of the node from the
	// root, e.g. "a.b[2].c". The root's path is "".
	Path() string

	Kind() Kind
	IsMap() bool
	IsArray() bool
	IsPrimitive() bool
	IsMissing() bool

	// Value returns the node as plain data: the scalar of a primitive,
	// or the snapshot AsMap/AsSlice would return.
	Value() (any, error)

	// Get returns the member name of a map. An absent member is not an
	// error: the result is a Missing node.
	Get(name string) (Node, error)
	Has(name string) (bool, error)
	// Names returns member names in document order.
	Names() ([]string, error)

	// Size and Index apply to arrays. Unlike Get, Index fails when the
	// element does not exist.
	Size() (int, error)
	Index(i int) (Node, error)

	AsInt() (int, error)
	AsInt64() (int64, error)
	AsFloat64() (float64, error)
	AsBool() (bool, error)
	// AsString returns the scalar as text with ${name} variable
	// references replaced. Undefined variables are left as written.
	AsString() (string, error)
	// AsReference treats the string value as a path expression and
	// resolves it starting from this node.
	AsReference() (Node, error)

	// AsMap and AsSlice return plain data snapshots of a map or array.
	AsMap() (map[string]any, error)
	AsSlice() ([]any, error)

	// Traverse resolves a path expression starting at this node.
	Traverse(path string) (Node, error)
}

// Root walks parent links up to the root of n's tree.
func Root(n Node) (Node, error) {
	cur := n
	for {
		p, err := cur.Parent()
		if err != nil {
			return nil, err
		}
		if p == nil {
			return cur, nil
		}
		cur = p
	}
}
