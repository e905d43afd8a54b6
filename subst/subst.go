// Package subst replaces ${name} references in strings.
//
// Supported forms:
//
//	${name}          value of name, left verbatim when name is undefined
//	${name:-default} value of name, or default when name is undefined
//	$${name}         the literal text ${name}
//
// Values found for a name are themselves substituted, so variables may
// refer to other variables. A reference chain that comes back to a name
// already being expanded fails with ErrCycle.
package subst

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cfgtree/cfgtree/debug"
)

var ErrCycle = errors.New("variable reference cycle")

// Func looks up the value of a variable.
type Func func(name string) (string, bool)

// Map adapts a plain map to a Func.
func Map(m map[string]string) Func {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Chain looks a name up in each Func in order.
func Chain(fs ...Func) Func {
	return func(name string) (string, bool) {
		for _, f := range fs {
			if f == nil {
				continue
			}
			if v, ok := f(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Replace substitutes every ${...} reference in s.
func Replace(s string, lookup Func) (string, error) {
	return replace(s, lookup, nil)
}

// Has reports whether s contains anything Replace would act on.
func Has(s string) bool {
	return strings.Contains(s, "${")
}

func replace(s string, lookup Func, active []string) (string, error) {
	if !Has(s) {
		return s, nil
	}
	var out strings.Builder
	out.Grow(len(s))
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], "${")
		if j < 0 {
			out.WriteString(s[i:])
			break
		}
		j += i
		if j > i && s[j-1] == '$' {
			// $${ escapes the reference
			out.WriteString(s[i : j-1])
			end := strings.IndexByte(s[j:], '}')
			if end < 0 {
				out.WriteString(s[j:])
				break
			}
			out.WriteString(s[j : j+end+1])
			i = j + end + 1
			continue
		}
		out.WriteString(s[i:j])
		end := strings.IndexByte(s[j+2:], '}')
		if end < 0 {
			out.WriteString(s[j:])
			break
		}
		ref := s[j+2 : j+2+end]
		next := j + 2 + end + 1
		name, def, hasDef := strings.Cut(ref, ":-")
		val, err := resolve(name, lookup, active)
		switch {
		case err != nil:
			return "", err
		case val != nil:
			out.WriteString(*val)
		case hasDef:
			dv, err := replace(def, lookup, active)
			if err != nil {
				return "", err
			}
			out.WriteString(dv)
		default:
			if debug.Subst() {
				debug.Logf("subst: unresolved variable %q\n", name)
			}
			out.WriteString(s[j:next])
		}
		i = next
	}
	return out.String(), nil
}

func resolve(name string, lookup Func, active []string) (*string, error) {
	if lookup == nil {
		return nil, nil
	}
	v, ok := lookup(name)
	if !ok {
		return nil, nil
	}
	for _, a := range active {
		if a == name {
			return nil, fmt.Errorf("%w: %s -> %s", ErrCycle, strings.Join(active, " -> "), name)
		}
	}
	x, err := replace(v, lookup, append(active, name))
	if err != nil {
		return nil, err
	}
	return &x, nil
}
