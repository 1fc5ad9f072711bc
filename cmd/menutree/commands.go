package main

import (
	"time"

	"github.com/scott-cotton/cli"
	"github.com/signadot/menutree/encode"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: encode.DefaultIndent}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: outline/o, yaml/y, json/j, flat/f, menu/m",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "menutree").
		WithSynopsis("menutree [opts] command [opts]").
		WithDescription("menutree renders menu files as numbered outlines.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mainRun(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg),
			WatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view <files>").
		WithDescription(viewDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

const viewDescription = `view renders menu files as numbered outlines.

A menu file declares nodes, then edges between them:

  A0001Drinks
  A0002Coffee
  B0001 0000
  B0002 0001

'A' records are an id of exactly 4 digits followed by a label running to the
end of the line. 'B' records are a child id then a parent id; parent 0000 is
the top level. All 'A' records must precede all 'B' records. The above
renders as

  1 Drinks
     1.1 Coffee

Use - to read standard input.`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <files>").
		WithDescription("check menu files and summarize them without rendering").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] <files>").
		WithDescription("rewrite menu files in canonical form, with edges ordered parents first").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMenu(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-patch] a b").
		WithDescription("diff the outlines of two menu files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg, Debounce: 100 * time.Millisecond}
	debounceOpt := &cli.Opt{
		Name:        "debounce",
		Description: "wait this long after a change before rendering (default 100ms)",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkDebounce()), "(duration)"),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, debounceOpt)
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch [-debounce d] <file>").
		WithDescription("render a menu file and render it again whenever it changes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
