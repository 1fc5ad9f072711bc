package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/scott-cotton/cli"
	"github.com/signadot/menutree"
	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/format"
	"github.com/signadot/menutree/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		cfg.Diff.Usage(cc, fmt.Errorf("%w: need 2 menu files, got %d", cli.ErrUsage, len(args)))
		return cli.ExitCodeErr(1)
	}
	eOpts, err := cfg.plainEncOpts()
	if err != nil {
		return err
	}
	fmat := format.OutlineFormat
	if cfg.Patch {
		fmat = format.FlatFormat
	}
	eOpts = append(eOpts, encode.EncodeFormat(fmat))
	rep := cfg.reporter()
	opts := []menutree.RunOption{
		menutree.WithParseOptions(cfg.parseOpts()...),
		menutree.WithEncodeOptions(eOpts...),
		menutree.WithWarnings(rep.warn),
	}
	log := newLog(cfg.Verbose)
	from, err := renderBytes(cc, args[0], log, opts)
	if err != nil {
		rep.fatal(err)
		return cli.ExitCodeErr(1)
	}
	to, err := renderBytes(cc, args[1], log, opts)
	if err != nil {
		rep.fatal(err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Patch {
		return diffPatch(cc, from, to)
	}
	lines := libdiff.Lines(string(from), string(to))
	if !libdiff.Changed(lines) {
		return nil
	}
	var color func(encode.ColorAttr, string) string
	if cfg.colors(cc.Out) {
		color = encode.NewColors().Color
	}
	if err := libdiff.Write(cc.Out, lines, color); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffPatch(cc *cli.Context, from, to []byte) error {
	var a, b map[string]string
	if err := json.Unmarshal(from, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(to, &b); err != nil {
		return err
	}
	patch, err := libdiff.MergePatch(a, b)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cc.Out, "%s\n", patch); err != nil {
		return err
	}
	if string(patch) == "{}" {
		return nil
	}
	return cli.ExitCodeErr(1)
}

func renderBytes(cc *cli.Context, file string, log *slog.Logger, opts []menutree.RunOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := render(cc.In, file, buf, log, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
