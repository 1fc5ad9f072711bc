package ir

import "fmt"

// Edge is an accepted edge record. Attached is the number of tree positions
// the child was placed at.
type Edge struct {
	Child    int
	Parent   int
	Line     int
	Attached int
}

// Tree is a registry together with the tree built over it.
type Tree struct {
	Name string

	reg      *Registry
	root     *Node
	index    map[int][]Position
	edges    []Edge
	nodes    int
	released bool
}

func NewTree(name string) *Tree {
	root := &Node{rec: -1, id: RootID}
	return &Tree{
		Name:  name,
		reg:   NewRegistry(),
		root:  root,
		index: map[int][]Position{RootID: {{Node: root}}},
	}
}

func (t *Tree) Registry() *Registry {
	return t.reg
}

func (t *Tree) Root() *Node {
	return t.root
}

// RootPosition is the position of the virtual root.
func (t *Tree) RootPosition() Position {
	return Position{Node: t.root}
}

// Nodes returns the number of positions attached below the virtual root.
func (t *Tree) Nodes() int {
	return t.nodes
}

// Edges returns the number of accepted edge records.
func (t *Tree) Edges() int {
	return len(t.edges)
}

func (t *Tree) EdgeLog() []Edge {
	return t.edges
}

func (t *Tree) LogEdge(e Edge) {
	t.edges = append(t.edges, e)
}

// Positions returns the positions currently holding id, in creation order.
func (t *Tree) Positions(id int) []Position {
	return t.index[id]
}

// Attach places a new node for registry record rec as the last child of
// the node at p and returns the new position.
func (t *Tree) Attach(p Position, rec int) Position {
	n := &Node{rec: rec, id: t.reg.At(rec).ID}
	p.Node.Children = append(p.Node.Children, n)
	t.nodes++
	res := p.child(n)
	t.index[n.id] = append(t.index[n.id], res)
	return res
}

// Find walks the tree depth first, pre-order, and returns every position
// holding id.
func (t *Tree) Find(id int) []Position {
	var res []Position
	t.Walk(func(p Position) bool {
		if p.Node.id == id {
			res = append(res, p)
		}
		return true
	})
	return res
}

// Walk visits every position, the virtual root first, depth first and
// pre-order. Returning false from f skips the subtree below that position.
func (t *Tree) Walk(f func(Position) bool) {
	if t.root == nil {
		return
	}
	walk(t.RootPosition(), f)
}

func walk(p Position, f func(Position) bool) {
	if !f(p) {
		return
	}
	for _, c := range p.Node.Children {
		walk(p.child(c), f)
	}
}

func (t *Tree) Record(n *Node) Record {
	if n.IsRoot() {
		return Record{ID: RootID}
	}
	return t.reg.At(n.rec)
}

func (t *Tree) Label(n *Node) string {
	return t.Record(n).Label
}

func (t *Tree) Released() bool {
	return t.released
}

// Check returns ErrReleased if t has been released.
func (t *Tree) Check() error {
	if t == nil || t.released {
		return fmt.Errorf("%w: %s", ErrReleased, t.name())
	}
	return nil
}

func (t *Tree) name() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// ReleaseStats counts what Release tore down.
type ReleaseStats struct {
	Records int
	Nodes   int
	Root    bool
}

// Release drops all records, then all tree nodes children first, then the
// virtual root. It may be called on a partially built tree and is a no-op
// after the first call.
func (t *Tree) Release() ReleaseStats {
	var st ReleaseStats
	if t.released {
		return st
	}
	t.released = true
	st.Records = t.reg.release()
	for _, c := range t.root.Children {
		st.Nodes += releaseNode(c)
	}
	clear(t.root.Children)
	t.root.Children = nil
	t.root = nil
	st.Root = true
	clear(t.index)
	t.index = nil
	t.edges = nil
	t.nodes = 0
	return st
}
