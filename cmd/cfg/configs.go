package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cfgtree/cfgtree/format"
	"github.com/cfgtree/cfgtree/jsonconf"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colour output'"`
	NoEnv   bool `cli:"name=noenv desc='do not read variables from the process environment'"`
	Verbose bool `cli:"name=verbose desc='log loading and reloading'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Variables map[string]string
	EnvFiles  []string
	Patches   [][]byte

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) varOpt(_ *cli.Context, a string) (any, error) {
	k, v, ok := strings.Cut(a, "=")
	if !ok || k == "" {
		return nil, fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	cfg.Variables[k] = v
	return nil, nil
}

func (cfg *MainConfig) envFileOpt(_ *cli.Context, a string) (any, error) {
	cfg.EnvFiles = append(cfg.EnvFiles, a)
	return nil, nil
}

func (cfg *MainConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	cfg.Patches = append(cfg.Patches, d)
	return nil, nil
}

// inFormat returns the input format forced by the options, or nil to
// detect it from each file name.
func (cfg *MainConfig) inFormat() *format.Format {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cfg *MainConfig) loadOpts() []jsonconf.Option {
	res := []jsonconf.Option{
		jsonconf.WithLogger(cfg.logger()),
		jsonconf.WithEnvFiles(cfg.EnvFiles...),
	}
	if f := cfg.inFormat(); f != nil {
		res = append(res, jsonconf.WithFormat(*f))
	}
	if cfg.NoEnv {
		res = append(res, jsonconf.WithEnv(nil))
	}
	for _, p := range cfg.Patches {
		res = append(res, jsonconf.WithPatch(p))
	}
	return res
}

// load reads the configuration named by arg, "-" meaning cc.In, and
// adds the -v variables.
func (cfg *MainConfig) load(cc *cli.Context, arg string, extra ...jsonconf.Option) (*jsonconf.Configuration, error) {
	opts := append(cfg.loadOpts(), extra...)
	var (
		c   *jsonconf.Configuration
		err error
	)
	if arg == "-" {
		c, err = jsonconf.LoadReader(cc.In, opts...)
	} else {
		c, err = jsonconf.Load(arg, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", arg, err)
	}
	for k, v := range cfg.Variables {
		c.AddVariable(k, v)
	}
	return c, nil
}

// colors reports whether output to w is coloured: always with -color,
// never with -color=false, otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print values without variable substitution'"`

	Get *cli.Command
}

type RefConfig struct {
	*MainConfig

	Ref *cli.Command
}

type FindConfig struct {
	*MainConfig

	Find *cli.Command
}

type NamesConfig struct {
	*MainConfig

	Names *cli.Command
}

type VarsConfig struct {
	*MainConfig
	Env bool `cli:"name=env desc='include variables from the environment'"`

	Vars *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any
	At  string `cli:"name=at desc='path of the node to evaluate at'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Path    string `cli:"name=p desc='compare only the values at this path'"`
	Reverse bool   `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Resolve bool `cli:"name=resolve desc='substitute variables in string values'"`
	Line    bool `cli:"name=l desc='one line per document'"`

	Dump *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Debounce int `cli:"name=debounce desc='milliseconds to wait for changes to settle (default 200)'"`

	Watch *cli.Command
}

func (cfg *WatchConfig) debounce() time.Duration {
	if cfg.Debounce <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(cfg.Debounce) * time.Millisecond
}
