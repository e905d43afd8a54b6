// Package script evaluates expr-lang expressions against a configuration
// node.
//
// Besides the expr builtins an expression can call
//
//	whereami()     path of the node the expression runs at
//	cfg(path)      plain value at path, resolved from the node; nil if absent
//	ref(path)      value of the reference stored at path
//	exists(path)   whether path resolves to a present node
//	getvar(name)   value of a substitution variable, "" if undefined
//
// ${name} references in the expression text are substituted before it
// is compiled.
package script

import (
	"fmt"

	"github.com/cfgtree/cfgtree/debug"
	"github.com/cfgtree/cfgtree/node"
	"github.com/cfgtree/cfgtree/subst"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the identifiers an expression can refer to by name.
type Env map[string]any

// Compile substitutes and compiles src for evaluation at n.
func Compile(n node.Node, src string) (*vm.Program, error) {
	s, err := subst.Replace(src, n.Config().Lookup)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(s, exprOpts(n)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return prg, nil
}

// Eval compiles and runs src at n.
func Eval(n node.Node, src string, env Env) (any, error) {
	if debug.Traverse() {
		debug.Logf("script at %q: %s\n", n.Path(), src)
	}
	prg, err := Compile(n, src)
	if err != nil {
		return nil, err
	}
	return Run(prg, env)
}

// Run runs a program returned by Compile.
func Run(prg *vm.Program, env Env) (any, error) {
	if env == nil {
		env = Env{}
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// value returns the plain value of n, nil for Missing.
func value(n node.Node) (any, error) {
	if n.IsMissing() {
		return nil, nil
	}
	return n.Value()
}

func exprOpts(n node.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return n.Path(), nil
		},
			new(func() string)),
		expr.Function("cfg", func(params ...any) (any, error) {
			res, err := n.Traverse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return value(res)
		},
			new(func(string) any)),
		expr.Function("ref", func(params ...any) (any, error) {
			at, err := n.Traverse(params[0].(string))
			if err != nil {
				return nil, err
			}
			res, err := at.AsReference()
			if err != nil {
				return nil, err
			}
			return value(res)
		},
			new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			res, err := n.Traverse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return !res.IsMissing(), nil
		},
			new(func(string) bool)),
		expr.Function("getvar", func(params ...any) (any, error) {
			v, _ := n.Config().Lookup(params[0].(string))
			return v, nil
		},
			new(func(string) string)),
	}
}
