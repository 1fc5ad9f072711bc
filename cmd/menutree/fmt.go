package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/menutree"
	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/format"
)

func fmtMenu(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
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
	opts = append(opts, menutree.WithEncodeOptions(encode.EncodeFormat(format.MenuFormat)))
	log := newLog(cfg.Verbose)
	for _, file := range args {
		if cfg.Write && file == "-" {
			return fmt.Errorf("%w: cannot write back to standard input", cli.ErrUsage)
		}
		buf := bytes.NewBuffer(nil)
		if _, err := render(cc.In, file, buf, log, opts); err != nil {
			rep.fatal(err)
			continue
		}
		if !cfg.Write {
			if _, err := buf.WriteTo(cc.Out); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			rep.fatal(fmt.Errorf("could not write %s: %w", file, err))
		}
	}
	if rep.count() > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
