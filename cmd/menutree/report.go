package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/parse"
)

// reporter writes fatal errors and warnings for a command invocation,
// numbering errors from 1.
type reporter struct {
	w     io.Writer
	color func(encode.ColorAttr, string) string
	n     int
}

func newReporter(w io.Writer, colors bool) *reporter {
	c := &encode.Colors{}
	if colors {
		c = encode.NewColors()
	}
	return &reporter{w: w, color: c.Color}
}

func (r *reporter) fatal(err error) {
	r.n++
	head := r.color(encode.ErrorColor, fmt.Sprintf("Error #%d:", r.n))
	var pe *parse.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(r.w, "\n%s\n%v\n", head, err)
		return
	}
	fmt.Fprintf(r.w, "\n%s\nIn file: %s   On line: %d\n%s\n", head, pe.File, pe.Line, pe.Detail)
}

func (r *reporter) warn(w *parse.Warning) {
	head := r.color(encode.WarningColor, "Warning.")
	fmt.Fprintf(r.w, "\n%s In file: %s   On line: %d\nUnexpected character: %c Found.\n", head, w.File, w.Line, w.Char)
}

func (r *reporter) count() int {
	return r.n
}
