package main

import (
	"fmt"
	"io"

	"github.com/cfgtree/cfgtree/doc"
	"github.com/cfgtree/cfgtree/format"
	"github.com/cfgtree/cfgtree/node"

	"github.com/fatih/color"
)

// files returns the file arguments, "-" for standard input when there
// are none.
func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// resolve copies the subtree at n into document values, substituting
// variables in every string. Member order is kept.
func resolve(n node.Node) (any, error) {
	switch {
	case n.IsMissing():
		return nil, nil
	case n.IsMap():
		keys, err := n.Names()
		if err != nil {
			return nil, err
		}
		obj := doc.NewObject()
		for _, k := range keys {
			c, err := n.Get(k)
			if err != nil {
				return nil, err
			}
			v, err := resolve(c)
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	case n.IsArray():
		elts, err := node.Elements(n)
		if err != nil {
			return nil, err
		}
		res := make([]any, len(elts))
		for i, e := range elts {
			res[i], err = resolve(e)
			if err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	v, err := n.Value()
	if err != nil {
		return nil, err
	}
	if _, ok := v.(string); ok {
		return n.AsString()
	}
	return v, nil
}

type printer struct {
	w      io.Writer
	f      format.Format
	colors bool
}

func (cfg *MainConfig) printer(w io.Writer) *printer {
	return &printer{w: w, f: cfg.outFormat(), colors: cfg.colors(w)}
}

func (p *printer) missing(n node.Node) error {
	msg := fmt.Sprintf("<missing %s>", n.Path())
	if p.colors {
		msg = color.YellowString(msg)
	}
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

// node writes n: primitives as their text, maps and arrays encoded in
// the output format. It reports whether n was present.
func (p *printer) node(n node.Node, raw bool) (bool, error) {
	if n.IsMissing() {
		return false, p.missing(n)
	}
	if n.IsPrimitive() && p.f != format.CBORFormat {
		var (
			s   string
			err error
		)
		if raw {
			s = node.Dump(n)
		} else {
			s, err = n.AsString()
		}
		if err != nil {
			return true, err
		}
		if p.colors {
			s = color.GreenString(s)
		}
		_, err = fmt.Fprintln(p.w, s)
		return true, err
	}
	var (
		v   any
		err error
	)
	if raw {
		v, err = n.Value()
	} else {
		v, err = resolve(n)
	}
	if err != nil {
		return true, err
	}
	return true, p.value(v)
}

func (p *printer) value(v any) error {
	return doc.Encode(p.w, v, p.f)
}

func (p *printer) line(s string, c *color.Color) error {
	if p.colors && c != nil {
		s = c.Sprint(s)
	}
	_, err := fmt.Fprintln(p.w, s)
	return err
}
