package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"
	"github.com/signadot/menutree"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no menu file given", cli.ErrUsage)
	}
	rep := cfg.reporter()
	opts, err := cfg.runOpts(cc.Out, rep)
	if err != nil {
		return err
	}
	log := newLog(cfg.Verbose)
	sep := cfg.outFormat().Separator()
	for i, file := range args {
		if i > 0 {
			io.WriteString(cc.Out, sep)
		}
		if _, err := render(cc.In, file, cc.Out, log, opts); err != nil {
			rep.fatal(err)
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}

func render(in io.Reader, file string, w io.Writer, log *slog.Logger, opts []menutree.RunOption) (*menutree.Summary, error) {
	rc, name, err := openInput(in, file)
	if err != nil {
		return nil, err
	}
	log.Info("reading", "file", name)
	sum, err := menutree.Run(rc, name, w, opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("released", "file", name,
		"records", sum.Released.Records,
		"nodes", sum.Released.Nodes,
		"root", sum.Released.Root)
	return sum, nil
}
