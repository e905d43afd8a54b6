package node

import "fmt"

type Kind int

const (
	MissingKind Kind = iota
	MapKind
	ArrayKind
	PrimitiveKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		MissingKind:   "Missing",
		MapKind:       "Map",
		ArrayKind:     "Array",
		PrimitiveKind: "Primitive",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Missing":   MissingKind,
		"Map":       MapKind,
		"Array":     ArrayKind,
		"Primitive": PrimitiveKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func (k Kind) IsLeaf() bool {
	return k == PrimitiveKind || k == MissingKind
}
