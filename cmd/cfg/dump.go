package main

import (
	"fmt"

	"github.com/cfgtree/cfgtree/node"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p := cfg.printer(cc.Out)
	for _, arg := range files(args) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		if cfg.Line {
			if err := p.line(node.Dump(c.Root()), nil); err != nil {
				return err
			}
			continue
		}
		v := c.Document()
		if cfg.Resolve {
			v, err = resolve(c.Root())
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
		}
		if err := c.Write(cc.Out, v, p.f); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
