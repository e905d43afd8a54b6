package main

import (
	"fmt"

	"github.com/cfgtree/cfgtree/node"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, a member name", cli.ErrUsage)
	}
	name := args[0]
	p := cfg.printer(cc.Out)
	for _, arg := range files(args[1:]) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		found, err := node.FindByName(c.Root(), name)
		if err != nil {
			return fmt.Errorf("error searching %s: %w", arg, err)
		}
		for _, n := range found {
			if err := p.line(n.Path(), nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func names(cfg *NamesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Names.Parse(cc, args)
	if err != nil {
		cfg.Names.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: names requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	p := cfg.printer(cc.Out)
	for _, arg := range files(args[1:]) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		n, err := c.Traverse(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		if n.IsMissing() {
			if err := p.missing(n); err != nil {
				return err
			}
			continue
		}
		keys, err := n.Names()
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		for _, k := range keys {
			if err := p.line(k, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
