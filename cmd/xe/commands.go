package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Namespaces: map[string]string{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "n",
			Aliases:     []string{"ns"},
			Description: "namespace mapping, repeatable",
			Type:        cli.NamedFuncOpt(nsOptTypeFunc(cfg.Namespaces), "(prefix=uri)"),
		},
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "xe").
		WithSynopsis("xe [opts] command [opts] <file|->").
		WithDescription("xe edits xml documents addressed by xpath.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xeMain(cfg, cc, args)
		}).
		WithSubs(
			SetCommand(cfg),
			AddCommand(cfg),
			RmCommand(cfg),
			CountCommand(cfg),
			PathsCommand(cfg))
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("se").
		WithSynopsis("set (-v value | -clear | -c childspec) [-a attr] <file|->").
		WithDescription("set the text, an attribute, or the children of the selected nodes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("add").
		WithAliases("a").
		WithSynopsis("add -c childspec <file|->").
		WithDescription("append children to the selected nodes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
	cfg.Add = cmd
	return cmd
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rm").
		WithAliases("remove", "del").
		WithSynopsis("rm <file|->").
		WithDescription("remove the selected nodes or attributes").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
	cfg.Rm = cmd
	return cmd
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("count").
		WithAliases("c").
		WithSynopsis("count <file|->").
		WithDescription("count the selected nodes without mutating anything").
		WithRun(func(cc *cli.Context, args []string) error {
			return countMatches(cfg, cc, args)
		})
	cfg.Count = cmd
	return cmd
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("paths").
		WithAliases("p", "match").
		WithSynopsis("paths <file|->").
		WithDescription("print the canonical path of every selected node").
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
	cfg.Paths = cmd
	return cmd
}
