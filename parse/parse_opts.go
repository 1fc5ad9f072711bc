package parse

import (
	"log/slog"

	"github.com/signadot/menutree/token"
)

type parseOpts struct {
	allowDups  bool
	exhaustive bool
	strict     bool
	labelSize  int
	maxLabel   int
	warn       func(*Warning)
	log        *slog.Logger
}

func (o *parseOpts) ReaderOpts() []token.ReaderOpt {
	if o.maxLabel <= 0 {
		return nil
	}
	return []token.ReaderOpt{token.MaxLabel(o.maxLabel)}
}

type ParseOption func(*parseOpts)

// AllowDuplicates accepts several data records with the same id. Edges
// naming such an id as child use the first record declared.
func AllowDuplicates() ParseOption {
	return func(o *parseOpts) { o.allowDups = true }
}

// ExhaustiveSearch finds parent positions by walking the whole tree on
// every edge instead of using the position index.
func ExhaustiveSearch() ParseOption {
	return func(o *parseOpts) { o.exhaustive = true }
}

// Strict fails as soon as an edge names a parent that is not yet in the
// tree, instead of holding the edge until the parent is attached.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

func MaxLabel(n int) ParseOption {
	return func(o *parseOpts) { o.maxLabel = n }
}

// LabelSize sets the initial label buffer capacity; labels longer than that
// grow it by doubling up to MaxLabel.
func LabelSize(n int) ParseOption {
	return func(o *parseOpts) { o.labelSize = n }
}

func ParseWarnings(f func(*Warning)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}

func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}
