package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	p := cfg.printer(cc.Out)
	missing := false
	for _, arg := range files(args[1:]) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		n, err := c.Traverse(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		found, err := p.node(n, cfg.Raw)
		if err != nil {
			return err
		}
		missing = missing || !found
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func ref(cfg *RefConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ref.Parse(cc, args)
	if err != nil {
		cfg.Ref.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: ref requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	p := cfg.printer(cc.Out)
	missing := false
	for _, arg := range files(args[1:]) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		n, err := c.Traverse(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", path, arg, err)
		}
		target, err := n.AsReference()
		if err != nil {
			return fmt.Errorf("error following %q in %s: %w", path, arg, err)
		}
		found, err := p.node(target, false)
		if err != nil {
			return err
		}
		missing = missing || !found
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}
