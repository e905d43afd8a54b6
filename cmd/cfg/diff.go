package main

import (
	"fmt"
	"strings"

	"github.com/cfgtree/cfgtree/doc"
	"github.com/cfgtree/cfgtree/format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := cfg.text(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.text(cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffText(cfg.printer(cc.Out), from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// text loads arg and encodes its resolved value at the -p path as YAML,
// which diffs line by line more readably than JSON.
func (cfg *DiffConfig) text(cc *cli.Context, arg string) (string, error) {
	c, err := cfg.load(cc, arg)
	if err != nil {
		return "", err
	}
	n, err := c.Traverse(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("error resolving %q in %s: %w", cfg.Path, arg, err)
	}
	v, err := resolve(n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", arg, err)
	}
	if v == nil {
		return "", nil
	}
	d, err := doc.Marshal(v, format.YAMLFormat)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func diffText(p *printer, from, to string) (bool, error) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	differs := false
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, d := range diffs {
		var (
			prefix string
			c      *color.Color
		)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c = "-", del
			differs = true
		case diffpatch.DiffInsert:
			prefix, c = "+", ins
			differs = true
		default:
			prefix = " "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			if err := p.line(prefix+strings.TrimSuffix(ln, "\n"), c); err != nil {
				return differs, err
			}
		}
	}
	return differs, nil
}
