package tree

// Direction selects the neighbour in document order
type Direction int

const (
	Previous Direction = iota
	Next
)

// String returns the direction name
func (d Direction) String() string {
	if d == Next {
		return "next"
	}
	return "previous"
}

// ParseDirection parses "next", "previous" or "prev"
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next":
		return Next, true
	case "previous", "prev":
		return Previous, true
	}
	return Previous, false
}

// SiblingPolicy decides what happens when the adjacent sibling subtree holds
// no window.
type SiblingPolicy int

const (
	// StopAtAdjacent ends the search at the first sibling subtree found, with
	// no result if that subtree has no window.
	StopAtAdjacent SiblingPolicy = iota
	// SkipEmpty keeps going past windowless siblings and up through ancestors.
	SkipEmpty
)

// NextWindow returns the window after n in document order
func NextWindow(n Node) (Node, bool) {
	return Adjacent(n, Next, StopAtAdjacent)
}

// PreviousWindow returns the window before n in document order
func PreviousWindow(n Node) (Node, bool) {
	return Adjacent(n, Previous, StopAtAdjacent)
}

// Adjacent walks up from n looking for the nearest sibling subtree in the given
// direction, then descends into it for the first (Next) or last (Previous)
// window. The root has no neighbours.
func Adjacent(n Node, dir Direction, policy SiblingPolicy) (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}

	step := 1
	if dir == Previous {
		step = -1
	}

	cur := n
	for !cur.IsRoot() {
		for offset := step; ; offset += step {
			sib, ok := cur.sibling(offset)
			if !ok {
				break
			}
			var win Node
			var found bool
			if dir == Next {
				win, found = firstWindow(sib)
			} else {
				win, found = lastWindow(sib)
			}
			if found {
				return win, true
			}
			if policy == StopAtAdjacent {
				return Node{}, false
			}
		}
		cur, _ = cur.Parent()
	}
	return Node{}, false
}

// firstWindow returns the first window of the subtree in pre-order
func firstWindow(root Node) (Node, bool) {
	t := root.t
	stack := []int{root.index}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.entries[idx].snap.IsWindow() {
			return t.node(idx), true
		}
		stack = pushReversed(stack, t.entries[idx].children)
	}
	return Node{}, false
}

// lastWindow returns the last window of the subtree in pre-order by walking
// the subtree in reverse pre-order: children right to left, then the node.
func lastWindow(root Node) (Node, bool) {
	type frame struct {
		idx      int
		expanded bool
	}

	t := root.t
	stack := []frame{{idx: root.index}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e := &t.entries[f.idx]
		if f.expanded || len(e.children) == 0 {
			if e.snap.IsWindow() {
				return t.node(f.idx), true
			}
			continue
		}

		stack = append(stack, frame{idx: f.idx, expanded: true})
		// Left to right, so the rightmost child is popped first.
		for _, c := range e.children {
			stack = append(stack, frame{idx: c})
		}
	}
	return Node{}, false
}
