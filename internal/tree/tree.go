// Package tree is a navigable, read-only view over one layout tree snapshot.
//
// Every snapshot node is stored once in an arena, in pre-order, together with
// the index of its parent and the indices of its children. A Node is a plain
// position in that arena: it can be copied freely and can walk both up and down.
// None of the walks recurse; downward walks use an explicit stack and upward
// walks loop over parent indices.
package tree

import (
	"fmt"

	"github.com/yourusername/i4/internal/models"
)

// noParent marks the root entry
const noParent = -1

// Options controls how the arena is built from a snapshot
type Options struct {
	// IncludeFloating appends floating_nodes after nodes when listing children
	IncludeFloating bool
}

type entry struct {
	snap     *models.Node
	parent   int
	pos      int // index among the parent's children
	depth    int
	children []int
}

// Tree is the arena for a single snapshot
type Tree struct {
	entries []entry
	byID    map[int64]int
}

// Node is a position in a Tree
type Node struct {
	t     *Tree
	index int
}

// New builds the arena for root. The snapshot is never modified.
func New(root *models.Node, opts Options) *Tree {
	t := &Tree{byID: make(map[int64]int)}
	if root == nil {
		return t
	}

	type item struct {
		snap   *models.Node
		parent int
	}

	stack := []item{{snap: root, parent: noParent}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := len(t.entries)
		e := entry{snap: it.snap, parent: it.parent}
		if it.parent != noParent {
			p := &t.entries[it.parent]
			e.depth = p.depth + 1
			e.pos = len(p.children)
			p.children = append(p.children, idx)
		}
		t.entries = append(t.entries, e)
		if _, dup := t.byID[it.snap.ID]; !dup {
			t.byID[it.snap.ID] = idx
		}

		kids := childSnapshots(it.snap, opts)
		// Push in reverse so the first child is popped (and indexed) first.
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] == nil {
				continue
			}
			stack = append(stack, item{snap: kids[i], parent: idx})
		}
	}

	return t
}

func childSnapshots(n *models.Node, opts Options) []*models.Node {
	if !opts.IncludeFloating || len(n.FloatingNodes) == 0 {
		return n.Nodes
	}
	kids := make([]*models.Node, 0, len(n.Nodes)+len(n.FloatingNodes))
	kids = append(kids, n.Nodes...)
	return append(kids, n.FloatingNodes...)
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.entries)
}

// Root returns the root node. ok is false for an empty tree.
func (t *Tree) Root() (Node, bool) {
	if len(t.entries) == 0 {
		return Node{}, false
	}
	return Node{t: t, index: 0}, true
}

// Lookup finds a node by its snapshot id
func (t *Tree) Lookup(id int64) (Node, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Node{}, false
	}
	return Node{t: t, index: idx}, true
}

func (t *Tree) node(idx int) Node {
	return Node{t: t, index: idx}
}

// Valid reports whether n refers to a node of some tree
func (n Node) Valid() bool {
	return n.t != nil && n.index >= 0 && n.index < len(n.t.entries)
}

func (n Node) entry() *entry {
	return &n.t.entries[n.index]
}

// Snapshot returns the underlying snapshot node
func (n Node) Snapshot() *models.Node {
	return n.entry().snap
}

// ID returns the snapshot id
func (n Node) ID() int64 {
	return n.entry().snap.ID
}

// Name returns the display name
func (n Node) Name() string {
	return n.entry().snap.Name
}

// Kind returns the node type
func (n Node) Kind() models.NodeType {
	return n.entry().snap.Type
}

// Focused returns the focus flag
func (n Node) Focused() bool {
	return n.entry().snap.Focused
}

// IsWindow returns true for containers with a window handle
func (n Node) IsWindow() bool {
	return n.entry().snap.IsWindow()
}

// Depth returns the distance from the root
func (n Node) Depth() int {
	return n.entry().depth
}

// IsRoot returns true if n has no parent
func (n Node) IsRoot() bool {
	return n.entry().parent == noParent
}

// Parent returns the parent node; ok is false at the root
func (n Node) Parent() (Node, bool) {
	p := n.entry().parent
	if p == noParent {
		return Node{}, false
	}
	return n.t.node(p), true
}

// Children returns the children in snapshot order
func (n Node) Children() []Node {
	kids := n.entry().children
	out := make([]Node, len(kids))
	for i, c := range kids {
		out[i] = n.t.node(c)
	}
	return out
}

// NumChildren returns the number of children
func (n Node) NumChildren() int {
	return len(n.entry().children)
}

// IsLastChild returns true if n has no right sibling. The root counts as last.
func (n Node) IsLastChild() bool {
	e := n.entry()
	if e.parent == noParent {
		return true
	}
	return e.pos == len(n.t.entries[e.parent].children)-1
}

// Equal reports whether both nodes are the same position in the same tree
func (n Node) Equal(other Node) bool {
	return n.t == other.t && n.index == other.index
}

// String returns a short description for logs
func (n Node) String() string {
	if !n.Valid() {
		return "<none>"
	}
	return fmt.Sprintf("%s#%d", n.Kind(), n.ID())
}

// sibling returns the child of n's parent at pos+offset
func (n Node) sibling(offset int) (Node, bool) {
	e := n.entry()
	if e.parent == noParent {
		return Node{}, false
	}
	kids := n.t.entries[e.parent].children
	i := e.pos + offset
	if i < 0 || i >= len(kids) {
		return Node{}, false
	}
	return n.t.node(kids[i]), true
}
