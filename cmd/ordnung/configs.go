package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"

	"github.com/kvendingoldo/ordnung"
	"github.com/kvendingoldo/ordnung/finder"
)

type MainConfig struct {
	SortArrays bool `cli:"name=sort-arrays desc='sort object arrays by their first key'"`
	SortDocs   bool `cli:"name=sort-docs desc='sort multi-document files by first document key'"`
	Validate   bool `cli:"name=validate desc='verify the sorted result lost no data'"`
	Recursive  bool `cli:"name=recursive aliases=r desc='recursively search directories'"`
	Pattern    bool `cli:"name=pattern desc='treat inputs as glob patterns'"`

	Req   ordnung.Request
	Regex string
	Log   zerolog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) request() ordnung.Request {
	req := cfg.Req
	req.SortArraysByFirstKey = cfg.SortArrays
	req.SortDocsByFirstKey = cfg.SortDocs
	req.Validate = cfg.Validate
	return req
}

func (cfg *MainConfig) finderOpts() finder.Options {
	return finder.Options{
		Recursive: cfg.Recursive,
		Pattern:   cfg.Pattern,
		Regex:     cfg.Regex,
	}
}

func (cfg *MainConfig) indentOpt(target *int) cli.FuncOpt {
	return func(_ *cli.Context, a string) (any, error) {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: indent %q is not a positive integer", cli.ErrUsage, a)
		}
		*target = n
		return n, nil
	}
}

func (cfg *MainConfig) regexOpt(_ *cli.Context, a string) (any, error) {
	cfg.Regex = a
	return a, nil
}

func (cfg *MainConfig) logLevelOpt(_ *cli.Context, a string) (any, error) {
	lvl, err := zerolog.ParseLevel(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Log = cfg.Log.Level(lvl)
	return a, nil
}

type SortConfig struct {
	*MainConfig

	Out  string
	Sort *cli.Command
}

func (cfg *SortConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return a, nil
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
