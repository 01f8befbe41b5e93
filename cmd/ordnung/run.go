package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/kvendingoldo/ordnung"
	"github.com/kvendingoldo/ordnung/finder"
)

func runSort(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	files, err := findFiles(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	if cfg.Out != "" && len(files) > 1 {
		return fmt.Errorf("%w: -o requires a single input file, matched %d",
			cli.ErrUsage, len(files))
	}
	req := cfg.request()
	failed := 0
	for _, f := range files {
		cfg.Log.Info().Str("file", f).Msg("processing")
		if err := ordnung.SortFile(f, cfg.Out, req); err != nil {
			cfg.Log.Error().Err(err).Str("file", f).Msg("sort failed")
			failed++
			continue
		}
		cfg.Log.Debug().Str("file", f).Msg("sorted")
	}
	cfg.Log.Info().Int("files", len(files)).Msg("done")
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	files, err := findFiles(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	req := cfg.request()
	var unformatted []string
	for _, f := range files {
		ok, diff, err := ordnung.CheckFile(f, req, colorOut(cc))
		if err != nil {
			cfg.Log.Error().Err(err).Str("file", f).Msg("check failed")
			unformatted = append(unformatted, f)
			continue
		}
		if ok {
			cfg.Log.Debug().Str("file", f).Msg("already formatted")
			continue
		}
		cfg.Log.Warn().Str("file", f).Msg("not formatted")
		fmt.Fprint(cc.Out, diff)
		unformatted = append(unformatted, f)
	}
	if len(unformatted) > 0 {
		cfg.Log.Error().Int("count", len(unformatted)).Msg("files are not formatted")
		for _, f := range unformatted {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		return cli.ExitCodeErr(1)
	}
	cfg.Log.Info().Msg("all files are formatted")
	return nil
}

func findFiles(cfg *MainConfig, args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: no input files given", cli.ErrUsage)
	}
	files, err := finder.Find(args, cfg.finderOpts())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		cfg.Log.Error().Msg("no matching yaml/json files found")
		return nil, cli.ExitCodeErr(1)
	}
	return files, nil
}

func colorOut(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
