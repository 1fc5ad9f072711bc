package parse

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/signadot/menutree/debug"
	"github.com/signadot/menutree/ir"
	"github.com/signadot/menutree/token"
)

const idWidth = 4

// Parse reads menu source from r and builds its tree. name is used in
// errors and warnings. r is read to the end on success but never closed.
// On error the partially built tree is released and nil is returned.
func Parse(r io.Reader, name string, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{labelSize: token.DefaultLabelSize}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.log == nil {
		pOpts.log = slog.New(slog.DiscardHandler)
	}
	p := &parser{
		rd:   token.NewReader(r, pOpts.ReaderOpts()...),
		tree: ir.NewTree(name),
		opts: pOpts,
	}
	if err := p.run(); err != nil {
		st := p.tree.Release()
		if debug.Release() {
			debug.LogAny(st)
		}
		return nil, err
	}
	return p.tree, nil
}

type parser struct {
	rd           *token.Reader
	tree         *ir.Tree
	opts         *parseOpts
	edgesStarted bool
	pending      []pendingEdge
}

func (p *parser) run() error {
	for {
		pos := p.rd.Pos()
		c, err := p.rd.ReadByte()
		if err == io.EOF {
			if len(p.pending) != 0 {
				return p.noParentErr(p.pending[0])
			}
			return nil
		}
		if err != nil {
			return p.errf(KindResource, pos, fmt.Errorf("%w: %w", ErrResource, err),
				"Could not read input: %v.", err)
		}
		switch c {
		case 'A':
			err = p.decl(pos)
		case 'B':
			err = p.edge(pos)
		case '\n', ' ', '\t', '\r', '\v', '\f':
		default:
			p.warn(pos, c)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) decl(pos token.Pos) error {
	if p.edgesStarted {
		return p.errf(KindGrammar, pos, ErrDataAfterEdge,
			"'A' record found after a 'B' record.\nAll 'A' records must precede 'B' records.")
	}
	id, err := p.rd.ReadFixedDigits(idWidth)
	if err != nil {
		return p.errf(KindGrammar, pos, fmt.Errorf("%w: %w", ErrBadID, err),
			"Invalid node ID. An ID must be exactly %d digits.", idWidth)
	}
	if id == ir.RootID {
		return p.errf(KindGrammar, pos, ErrReservedID,
			"Node ID %04d is reserved for the top level and cannot be declared.", id)
	}
	reg := p.tree.Registry()
	if i, ok := reg.Lookup(id); ok && !p.opts.allowDups {
		return p.errf(KindGrammar, pos, ErrDuplicateID,
			"Node ID %04d was already declared on line %d.", id, reg.At(i).Line)
	}
	label, err := p.rd.ReadLabel(p.opts.labelSize)
	if err != nil {
		return p.errf(KindResource, pos, fmt.Errorf("%w: %w", ErrResource, err),
			"Label for node with ID %04d could not be stored: %v.", id, err)
	}
	if _, err := reg.Add(ir.Record{ID: id, Label: label, Line: pos.Line}); err != nil {
		return p.errf(KindGrammar, pos, fmt.Errorf("%w: %w", ErrBadID, err),
			"Node ID %04d is out of range.", id)
	}
	p.opts.log.Debug("declared", "id", id, "label", label, "line", pos.Line)
	return nil
}

func (p *parser) edge(pos token.Pos) error {
	p.edgesStarted = true
	child, err := p.rd.ReadFixedDigits(idWidth)
	if err != nil {
		return p.errf(KindGrammar, pos, fmt.Errorf("%w: %w", ErrBadID, err),
			"Invalid child ID. An ID must be exactly %d digits.", idWidth)
	}
	parent, err := p.readParentID()
	if err != nil {
		return p.errf(KindGrammar, pos, fmt.Errorf("%w: %w", ErrBadID, err),
			"Invalid parent ID. An ID must be exactly %d digits.", idWidth)
	}
	if child == parent {
		return p.errf(KindGrammar, pos, ErrSelfParent,
			"Cannot insert node with ID %04d as a child of itself.\nParent and child IDs must differ.", child)
	}
	if child == ir.RootID {
		return p.errf(KindGrammar, pos, ErrReservedID,
			"Child ID %04d is reserved for the top level.", child)
	}
	rec, ok := p.tree.Registry().Lookup(child)
	if !ok {
		return p.errf(KindReference, pos, ErrNoSuchNode,
			"Cannot insert child into tree. No node with ID %04d was declared.", child)
	}
	e := pendingEdge{child: child, parent: parent, rec: rec, pos: pos}
	parents := p.parents(parent)
	if len(parents) == 0 {
		if p.opts.strict {
			return p.noParentErr(e)
		}
		p.pending = append(p.pending, e)
		p.opts.log.Debug("edge waiting", "child", child, "parent", parent, "line", pos.Line)
		return nil
	}
	return p.attach(e, parents)
}

// pendingEdge is an edge whose parent was not in the tree when it was read.
type pendingEdge struct {
	child, parent int
	rec           int
	pos           token.Pos
}

func (p *parser) attach(e pendingEdge, parents []ir.Position) error {
	for _, pp := range parents {
		if pp.HasAncestor(e.child) {
			return p.errf(KindReference, e.pos, ErrCycle,
				"Inserting node with ID %04d under %04d would make it its own ancestor.", e.child, e.parent)
		}
	}
	for _, pp := range parents {
		p.tree.Attach(pp, e.rec)
	}
	le := ir.Edge{Child: e.child, Parent: e.parent, Line: e.pos.Line, Attached: len(parents)}
	p.tree.LogEdge(le)
	if debug.Parse() {
		debug.LogAny(le)
	}
	p.opts.log.Debug("edge", "child", e.child, "parent", e.parent, "attached", len(parents), "line", e.pos.Line)
	return p.unblock(e.child)
}

// unblock attaches waiting edges whose parent is id, in the order they
// were read.
func (p *parser) unblock(id int) error {
	for i := 0; i < len(p.pending); {
		e := p.pending[i]
		if e.parent != id {
			i++
			continue
		}
		p.pending = slices.Delete(p.pending, i, i+1)
		if err := p.attach(e, p.parents(e.parent)); err != nil {
			return err
		}
		i = 0
	}
	return nil
}

func (p *parser) noParentErr(e pendingEdge) error {
	return p.errf(KindReference, e.pos, ErrNoParent,
		"Parent with ID %04d is not in the tree.\nCannot insert node with ID %04d as its child.", e.parent, e.child)
}

// parents returns a snapshot of the positions currently holding id.
func (p *parser) parents(id int) []ir.Position {
	if p.opts.exhaustive {
		return p.tree.Find(id)
	}
	return append([]ir.Position(nil), p.tree.Positions(id)...)
}

// readParentID reads the second id of an edge record, which may be
// separated from the child id by spaces or tabs.
func (p *parser) readParentID() (int, error) {
	if err := p.rd.SkipBlanks(); err != nil {
		return 0, err
	}
	return p.rd.ReadFixedDigits(idWidth)
}

func (p *parser) warn(pos token.Pos, c byte) {
	w := &Warning{File: p.tree.Name, Line: pos.Line, Col: pos.Col, Char: c}
	p.opts.log.Warn("unexpected character", "file", w.File, "line", w.Line, "char", string(c))
	if p.opts.warn != nil {
		p.opts.warn(w)
	}
}

func (p *parser) errf(k Kind, pos token.Pos, err error, format string, args ...any) error {
	return &Error{
		Kind:   k,
		File:   p.tree.Name,
		Line:   pos.Line,
		Col:    pos.Col,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
