// Package filter compiles boolean expressions over menu tree positions.
//
// Expressions use the expr language (github.com/expr-lang/expr) with the
// variables of [Env]:
//
//	depth < 3
//	label contains "Coffee"
//	id in [1, 2, 7] || parent == 0
package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

// Env is what an expression can see of a tree position. Depth is 1 for
// top level items. Number is the outline number the position would have.
type Env struct {
	ID       int    `expr:"id"`
	Parent   int    `expr:"parent"`
	Label    string `expr:"label"`
	Depth    int    `expr:"depth"`
	Number   string `expr:"number"`
	Children int    `expr:"children"`
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) Match(env Env) (bool, error) {
	out, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: running %q: %w", ErrFilter, f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrFilter, f.src, out)
	}
	return b, nil
}

func (f *Filter) String() string {
	return f.src
}
