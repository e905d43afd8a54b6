package main

import (
	"maps"
	"slices"

	"github.com/cfgtree/cfgtree/jsonconf"
	"github.com/cfgtree/cfgtree/subst"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func vars(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		cfg.Vars.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p := cfg.printer(cc.Out)
	nameColor := color.New(color.FgCyan)
	for _, arg := range files(args) {
		c, err := cfg.load(cc, arg)
		if err != nil {
			return err
		}
		all := c.Variables()
		keys := slices.Sorted(maps.Keys(all))
		if !cfg.Env {
			keys = ownVariables(c, cfg.MainConfig)
		}
		for _, k := range keys {
			v, err := subst.Replace(all[k], c.Lookup)
			if err != nil {
				return err
			}
			name := k
			if p.colors {
				name = nameColor.Sprint(k)
			}
			if err := p.line(name+"="+v, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// ownVariables returns the names of the variables defined by the
// document, config_dir and -v, sorted.
func ownVariables(c *jsonconf.Configuration, cfg *MainConfig) []string {
	set := map[string]bool{}
	if _, ok := c.Lookup(jsonconf.DirVariable); ok {
		set[jsonconf.DirVariable] = true
	}
	if sect, err := c.Root().Get(jsonconf.VariablesSection); err == nil && sect.IsMap() {
		keys, _ := sect.Names()
		for _, k := range keys {
			set[k] = true
		}
	}
	for k := range cfg.Variables {
		set[k] = true
	}
	return slices.Sorted(maps.Keys(set))
}
