package ir

// Node is a position in the tree. It refers to a registry record by index;
// the virtual root refers to none. Children are kept in attachment order.
type Node struct {
	rec      int
	id       int
	Children []*Node
}

func (n *Node) ID() int {
	return n.id
}

func (n *Node) IsRoot() bool {
	return n.rec < 0
}

// Record returns the registry index of the record at n, -1 for the root.
func (n *Node) Record() int {
	return n.rec
}

// Position is a node together with the ids of its ancestors, outermost
// first, excluding the virtual root.
type Position struct {
	Node      *Node
	Ancestors []int
}

// HasAncestor reports whether id names the node at p or one of its ancestors.
func (p Position) HasAncestor(id int) bool {
	if p.Node.id == id {
		return true
	}
	for _, a := range p.Ancestors {
		if a == id {
			return true
		}
	}
	return false
}

func (p Position) child(n *Node) Position {
	var anc []int
	if !p.Node.IsRoot() {
		anc = make([]int, len(p.Ancestors), len(p.Ancestors)+1)
		copy(anc, p.Ancestors)
		anc = append(anc, p.Node.id)
	}
	return Position{Node: n, Ancestors: anc}
}

// releaseNode clears n's subtree children first and returns the number of
// nodes visited, n included.
func releaseNode(n *Node) int {
	count := 1
	for _, c := range n.Children {
		count += releaseNode(c)
	}
	clear(n.Children)
	n.Children = nil
	return count
}
