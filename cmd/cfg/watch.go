package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cfgtree/cfgtree/jsonconf"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: watch requires a file and an optional path", cli.ErrUsage)
	}
	file, path := args[0], ""
	if len(args) == 2 {
		path = args[1]
	}
	opts := append(cfg.loadOpts(), jsonconf.WithDebounce(cfg.debounce()))
	w, err := jsonconf.NewWatcher(file, opts...)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := cfg.printer(cc.Out)
	errColor := color.New(color.FgRed)
	return w.Run(ctx, func(c *jsonconf.Configuration, err error) {
		when := time.Now().Format(time.RFC3339)
		if err != nil {
			p.line("# "+when+" "+err.Error(), errColor)
			return
		}
		for k, v := range cfg.Variables {
			c.AddVariable(k, v)
		}
		p.line("# "+when, nil)
		n, err := c.Traverse(path)
		if err == nil {
			_, err = p.node(n, false)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
}
