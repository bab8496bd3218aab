package tree

import (
	"errors"
	"strings"

	"github.com/yourusername/i4/internal/models"
)

// ErrNoFocus is returned when no node in the snapshot has focus
var ErrNoFocus = errors.New("no node in focus")

// FindFocused returns the first focused node under root in pre-order
func FindFocused(root Node) (Node, bool) {
	if !root.Valid() {
		return Node{}, false
	}
	t := root.t
	stack := []int{root.index}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e := &t.entries[idx]
		if e.snap.Focused {
			return t.node(idx), true
		}
		stack = pushReversed(stack, e.children)
	}
	return Node{}, false
}

// FindAncestor walks up from n (inclusive) and returns the first node of the given kind
func FindAncestor(n Node, kind models.NodeType) (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}
	t := n.t
	for idx := n.index; idx != noParent; idx = t.entries[idx].parent {
		if t.entries[idx].snap.Type == kind {
			return t.node(idx), true
		}
	}
	return Node{}, false
}

// Workspace returns the workspace containing n
func Workspace(n Node) (Node, bool) {
	return FindAncestor(n, models.NodeWorkspace)
}

// Output returns the output containing n
func Output(n Node) (Node, bool) {
	return FindAncestor(n, models.NodeOutput)
}

// CollectWindows returns all windows under root in document order
func CollectWindows(root Node) []Node {
	var windows []Node
	walk(root, func(n Node) bool {
		if n.IsWindow() {
			windows = append(windows, n)
		}
		return true
	})
	return windows
}

// Walk visits every node under root in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(root Node, fn func(Node) bool) {
	walk(root, fn)
}

func walk(root Node, fn func(Node) bool) {
	if !root.Valid() {
		return
	}
	t := root.t
	stack := []int{root.index}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fn(t.node(idx)) {
			stack = pushReversed(stack, t.entries[idx].children)
		}
	}
}

// IsInternal returns true for nodes under i3's hidden __i3 output (scratchpad)
func IsInternal(n Node) bool {
	out, ok := Output(n)
	return ok && strings.HasPrefix(out.Name(), "__")
}

// IsVisible reports whether workspace ws is shown on its output: it heads
// its parent's focus list.
func IsVisible(ws Node) bool {
	if !ws.Valid() || ws.Kind() != models.NodeWorkspace || IsInternal(ws) {
		return false
	}
	p, ok := ws.Parent()
	if !ok {
		return false
	}
	focus := p.Snapshot().Focus
	return len(focus) > 0 && focus[0] == ws.ID()
}

// Workspaces returns every workspace outside the internal outputs, in
// document order.
func Workspaces(root Node) []Node {
	var found []Node
	walk(root, func(n Node) bool {
		if n.Kind() != models.NodeWorkspace {
			return true
		}
		if !IsInternal(n) {
			found = append(found, n)
		}
		// Workspaces do not nest.
		return false
	})
	return found
}

// VisibleWorkspaces returns the workspaces currently shown on an output
func VisibleWorkspaces(root Node) []Node {
	var visible []Node
	for _, ws := range Workspaces(root) {
		if IsVisible(ws) {
			visible = append(visible, ws)
		}
	}
	return visible
}

// pushReversed pushes children so that the first child is popped first
func pushReversed(stack []int, children []int) []int {
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	return stack
}
