// Package menutree renders menu source as a numbered outline.
//
// [Run] is the whole pipeline for one input: build the tree with package
// parse, render it with package encode, release the tree and close the
// input. Output is written only if the whole tree rendered.
package menutree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/menutree/debug"
	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/ir"
	"github.com/signadot/menutree/parse"
)

// Summary describes a completed run.
type Summary struct {
	Name     string
	Records  int
	Edges    int
	Nodes    int
	Warnings int
	Released ir.ReleaseStats
}

type runOpts struct {
	parse  []parse.ParseOption
	encode []encode.EncodeOption
	warn   func(*parse.Warning)
}

type RunOption func(*runOpts)

func WithParseOptions(opts ...parse.ParseOption) RunOption {
	return func(o *runOpts) { o.parse = append(o.parse, opts...) }
}
func WithEncodeOptions(opts ...encode.EncodeOption) RunOption {
	return func(o *runOpts) { o.encode = append(o.encode, opts...) }
}

// WithWarnings receives parse warnings. It takes precedence over a
// parse.ParseWarnings given through WithParseOptions.
func WithWarnings(f func(*parse.Warning)) RunOption {
	return func(o *runOpts) { o.warn = f }
}

// Run reads menu source from rc and writes the rendered tree to w. rc is
// closed exactly once before Run returns, whether or not it succeeds.
func Run(rc io.ReadCloser, name string, w io.Writer, opts ...RunOption) (sum *Summary, err error) {
	rOpts := &runOpts{}
	for _, opt := range opts {
		opt(rOpts)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			sum, err = nil, fmt.Errorf("error closing %s: %w", name, cerr)
		}
	}()
	warnings := 0
	pOpts := append(rOpts.parse, parse.ParseWarnings(func(w *parse.Warning) {
		warnings++
		if rOpts.warn != nil {
			rOpts.warn(w)
		}
	}))
	tree, err := parse.Parse(rc, name, pOpts...)
	if err != nil {
		return nil, err
	}
	sum = &Summary{
		Name:     name,
		Records:  tree.Registry().Len(),
		Edges:    tree.Edges(),
		Nodes:    tree.Nodes(),
		Warnings: warnings,
	}
	buf := bytes.NewBuffer(nil)
	encErr := encode.Encode(tree, buf, rOpts.encode...)
	sum.Released = tree.Release()
	if debug.Release() {
		debug.LogAny(sum.Released)
	}
	if encErr != nil {
		return nil, fmt.Errorf("error rendering %s: %w", name, encErr)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("error writing %s: %w", name, err)
	}
	return sum, nil
}
