package node

import (
	"strings"
)

// Dump renders n on one line: maps as {k=v, ...}, arrays as [a,b,...]
// and primitives as their raw text. It is meant for messages and
// debugging, not as a document encoding.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	switch {
	case n.IsMissing():
		b.WriteString("<missing " + n.Path() + ">")
	case n.IsMap():
		names, err := n.Names()
		if err != nil {
			b.WriteString("<" + err.Error() + ">")
			return
		}
		b.WriteByte('{')
		for i, k := range names {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteByte('=')
			c, err := n.Get(k)
			if err != nil {
				b.WriteString("<" + err.Error() + ">")
				continue
			}
			dump(b, c)
		}
		b.WriteByte('}')
	case n.IsArray():
		elts, err := Elements(n)
		if err != nil {
			b.WriteString("<" + err.Error() + ">")
			return
		}
		b.WriteByte('[')
		for i, e := range elts {
			if i != 0 {
				b.WriteByte(',')
			}
			dump(b, e)
		}
		b.WriteByte(']')
	default:
		v, err := n.Value()
		if err != nil {
			b.WriteString("<" + err.Error() + ">")
			return
		}
		s, err := ConvString(n.Path(), v)
		if err != nil {
			b.WriteString("<" + err.Error() + ">")
			return
		}
		b.WriteString(s)
	}
}
