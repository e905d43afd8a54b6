package main

import (
	"fmt"
	"strings"

	"github.com/cfgtree/cfgtree/script"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func cfgEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	p := cfg.printer(cc.Out)
	for _, arg := range files(args[1:]) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		at, err := c.Traverse(cfg.At)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", cfg.At, arg, err)
		}
		res, err := script.Eval(at, src, script.Env(cfg.Env))
		if err != nil {
			return fmt.Errorf("error evaluating in %s: %w", arg, err)
		}
		if err := p.value(res); err != nil {
			return err
		}
	}
	return nil
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets a.b.c=val in env, creating intermediate maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	tmpEnv := env
	for i, part := range parts {
		if i == len(parts)-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
