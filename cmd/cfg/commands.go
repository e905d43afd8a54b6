package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Variables: map[string]string{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "v",
			Description: "set a substitution variable",
			Type:        cli.NamedFuncOpt(cfg.varOpt, "(name=val)"),
		},
		&cli.Opt{
			Name:        "envfile",
			Description: "read variables from a dotenv file",
			Type:        cli.NamedFuncOpt(cfg.envFileOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "patch",
			Description: "apply a JSON patch or merge patch file to every document",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cfg").
		WithSynopsis("cfg [opts] command [opts]").
		WithDescription("cfg queries hierarchical configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cfgMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			RefCommand(cfg),
			FindCommand(cfg),
			NamesCommand(cfg),
			VarsCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			DumpCommand(cfg),
			WatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [opts] <path> [files]").
		WithDescription("print the value at a path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func RefCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ref, "ref").
		WithAliases("r").
		WithSynopsis("ref <path> [files]").
		WithDescription("print the value a reference at path points to").
		WithRun(func(cc *cli.Context, args []string) error {
			return ref(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find <name> [files]").
		WithDescription("list the paths of every member with the given key").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func NamesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NamesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Names, "names").
		WithAliases("n", "ls").
		WithSynopsis("names <path> [files]").
		WithDescription("list the member names of the map at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return names(cfg, cc, args)
		})
}

func VarsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VarsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Vars, "vars").
		WithSynopsis("vars [opts] [files]").
		WithDescription("list substitution variables").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vars(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-at path] [-e name=val]... <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cfgEval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against a configuration.

Expressions use the expr language. In addition to its builtins they may
call

  whereami()     path of the node given by -at
  cfg(path)      value at path, relative to -at; nil when absent
  ref(path)      value of the reference stored at path
  exists(path)   whether path resolves to a value
  getvar(name)   value of a substitution variable

Identifiers set with -e are visible by name; values are parsed as YAML.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-p path] a b").
		WithDescription("diff the resolved values of two configurations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [opts] [files]").
		WithDescription("re-encode configuration documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch [opts] <file> [path]").
		WithDescription("print the value at path every time file changes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
