package node

import "github.com/cfgtree/cfgtree/node/npath"

// Missing is the node produced when a path resolves to nothing.
type Missing struct {
	cfg  Config
	path string
}

var _ Node = (*Missing)(nil)

func NewMissing(cfg Config, path string) *Missing {
	return &Missing{cfg: cfg, path: path}
}

func (m *Missing) err() error {
	return &MissingNodeError{Path: m.path}
}

func (m *Missing) Config() Config           { return m.cfg }
func (m *Missing) Parent() (Node, error)    { return nil, m.err() }
func (m *Missing) Path() string             { return m.path }
func (m *Missing) Kind() Kind               { return MissingKind }
func (m *Missing) IsMap() bool              { return false }
func (m *Missing) IsArray() bool            { return false }
func (m *Missing) IsPrimitive() bool        { return false }
func (m *Missing) IsMissing() bool          { return true }
func (m *Missing) Value() (any, error)      { return nil, m.err() }
func (m *Missing) Has(string) (bool, error) { return false, nil }
func (m *Missing) Names() ([]string, error) { return nil, m.err() }
func (m *Missing) Size() (int, error)       { return 0, m.err() }
func (m *Missing) Index(int) (Node, error)  { return nil, m.err() }

// Get never fails: the child of a Missing node is Missing too.
func (m *Missing) Get(name string) (Node, error) {
	return NewMissing(m.cfg, npath.Join(m.path, name)), nil
}

func (m *Missing) AsInt() (int, error)         { return 0, m.err() }
func (m *Missing) AsInt64() (int64, error)     { return 0, m.err() }
func (m *Missing) AsFloat64() (float64, error) { return 0, m.err() }
func (m *Missing) AsBool() (bool, error)       { return false, m.err() }
func (m *Missing) AsString() (string, error)   { return "", m.err() }
func (m *Missing) AsReference() (Node, error)  { return nil, m.err() }
func (m *Missing) AsSlice() ([]any, error)     { return nil, m.err() }

// AsMap of a Missing node is empty, so bulk readers can treat an absent
// section as one with no entries.
func (m *Missing) AsMap() (map[string]any, error) {
	return map[string]any{}, nil
}

func (m *Missing) Traverse(path string) (Node, error) {
	return Traverse(m, path)
}

func (m *Missing) String() string {
	return "<missing " + m.path + ">"
}
