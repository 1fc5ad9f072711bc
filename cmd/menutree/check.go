package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/menutree"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no menu file given", cli.ErrUsage)
	}
	rep := cfg.reporter()
	opts, err := cfg.runOpts(io.Discard, rep)
	if err != nil {
		return err
	}
	log := newLog(cfg.Verbose)
	for _, file := range args {
		sum, err := render(cc.In, file, io.Discard, log, opts)
		if err != nil {
			rep.fatal(err)
			continue
		}
		fmt.Fprintln(cc.Out, summaryLine(sum))
	}
	if rep.count() > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func summaryLine(s *menutree.Summary) string {
	return fmt.Sprintf("%s: ok: %d records, %d edges, %d lines, %d warnings",
		s.Name, s.Records, s.Edges, s.Nodes, s.Warnings)
}
