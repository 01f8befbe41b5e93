package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/kvendingoldo/ordnung"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		Req: ordnung.DefaultRequest(),
		Log: newLogger(),
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "json-indent",
			Description: "indentation width for json files (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt(&cfg.Req.JSONIndent), "(width)"),
		},
		{
			Name:        "yaml-indent",
			Description: "indentation width for yaml files (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt(&cfg.Req.YAMLIndent), "(width)"),
		},
		{
			Name:        "regex",
			Description: "regex to further filter matched files",
			Type:        cli.NamedFuncOpt(cfg.regexOpt, "(expr)"),
		},
		{
			Name:        "log-level",
			Description: "log level: debug, info, warn, error",
			Type:        cli.NamedFuncOpt(cfg.logLevelOpt, "(level)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ordnung").
		WithSynopsis("ordnung [opts] command [files]").
		WithDescription("ordnung sorts yaml and json files into a canonical form.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ordnungMain(cfg, cc, args)
		}).
		WithSubs(
			SortCommand(cfg),
			CheckCommand(cfg))
}

func ordnungMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s").
		WithSynopsis("sort [-o out] [files|dirs|patterns]").
		WithDescription("sort files in place (or to -o for a single input)").
		WithOpts(&cli.Opt{
			Name:        "o",
			Description: "output file (single input only; default in place)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSort(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files|dirs|patterns]").
		WithDescription("report files that are not in canonical form without rewriting").
		WithRun(func(cc *cli.Context, args []string) error {
			return runCheck(cfg, cc, args)
		})
}
