package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse     = errors.New("parse error")
	ErrResource  = fmt.Errorf("%w: resource exhausted", ErrParse)
	ErrGrammar   = fmt.Errorf("%w: grammar violation", ErrParse)
	ErrReference = fmt.Errorf("%w: referential violation", ErrParse)

	ErrDataAfterEdge = fmt.Errorf("%w: data record after edge record", ErrGrammar)
	ErrBadID         = fmt.Errorf("%w: invalid id", ErrGrammar)
	ErrReservedID    = fmt.Errorf("%w: reserved id", ErrGrammar)
	ErrSelfParent    = fmt.Errorf("%w: node is its own parent", ErrGrammar)
	ErrDuplicateID   = fmt.Errorf("%w: duplicate id", ErrGrammar)

	ErrNoSuchNode = fmt.Errorf("%w: undeclared node", ErrReference)
	ErrNoParent   = fmt.Errorf("%w: parent not in tree", ErrReference)
	ErrCycle      = fmt.Errorf("%w: cycle", ErrReference)
)

type Kind int

const (
	KindResource Kind = iota
	KindGrammar
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindGrammar:
		return "grammar"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Error is a fatal condition found while building a tree. Line and Col
// locate the record where it was detected.
type Error struct {
	Kind   Kind
	File   string
	Line   int
	Col    int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Warning is a recoverable condition: an unexpected byte outside of any
// record.
type Warning struct {
	File string
	Line int
	Col  int
	Char byte
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s:%d:%d: unexpected character %q", w.File, w.Line, w.Col, w.Char)
}
