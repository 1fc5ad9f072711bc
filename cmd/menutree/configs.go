package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/menutree"
	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/filter"
	"github.com/signadot/menutree/format"
	"github.com/signadot/menutree/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Verbose    bool   `cli:"name=v desc='log progress to stderr'"`
	Dups       bool   `cli:"name=dups desc='allow a node id to be declared more than once'"`
	Strict     bool   `cli:"name=strict desc='fail on an edge whose parent is not yet in the tree'"`
	Exhaustive bool   `cli:"name=exhaustive desc='find parents by searching the whole tree'"`
	Indent     int    `cli:"name=indent desc='spaces per outline level'"`
	Depth      int    `cli:"name=depth desc='render at most this many levels, 0 for all'"`
	MaxLabel   int    `cli:"name=maxlabel desc='largest label accepted, in bytes'"`
	LabelSize  int    `cli:"name=labelsize desc='initial label buffer, in bytes'"`
	Filter     string `cli:"name=filter desc='only render nodes matching this expression'"`

	OutFormat *format.Format

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

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseLogger(newLog(cfg.Verbose)),
	}
	if cfg.Dups {
		res = append(res, parse.AllowDuplicates())
	}
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	if cfg.Exhaustive {
		res = append(res, parse.ExhaustiveSearch())
	}
	if cfg.MaxLabel > 0 {
		res = append(res, parse.MaxLabel(cfg.MaxLabel))
	}
	if cfg.LabelSize > 0 {
		res = append(res, parse.LabelSize(cfg.LabelSize))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	res, err := cfg.plainEncOpts()
	if err != nil {
		return nil, err
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.OutlineFormat
}

func (cfg *MainConfig) plainEncOpts() ([]encode.EncodeOption, error) {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.Indent(cfg.Indent),
		encode.MaxDepth(cfg.Depth),
	}
	if cfg.Filter != "" {
		f, err := filter.Compile(cfg.Filter)
		if err != nil {
			return nil, usageErr(err)
		}
		res = append(res, encode.EncodeFilter(f))
	}
	return res, nil
}

// colors reports whether output to w should be colored: -color forces it
// either way, otherwise color is used when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) runOpts(w io.Writer, rep *reporter) ([]menutree.RunOption, error) {
	eOpts, err := cfg.encOpts(w)
	if err != nil {
		return nil, err
	}
	return []menutree.RunOption{
		menutree.WithParseOptions(cfg.parseOpts()...),
		menutree.WithEncodeOptions(eOpts...),
		menutree.WithWarnings(rep.warn),
	}, nil
}

func (cfg *MainConfig) reporter() *reporter {
	return newReporter(os.Stderr, cfg.colors(os.Stderr))
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source file'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='print a JSON merge patch between the flattened outlines'"`

	Diff *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Gops     bool `cli:"name=gops desc='start a gops diagnostics agent'"`
	Debounce time.Duration

	Watch *cli.Command
}

func (cfg *WatchConfig) mkDebounce() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Debounce = d
		return d, nil
	}
}

func usageErr(err error) error {
	return fmt.Errorf("%w: %w", cli.ErrUsage, err)
}
