package models

import (
	"encoding/json"
	"fmt"
)

// NodeType is the kind tag of a layout tree node
type NodeType string

const (
	NodeRoot              NodeType = "root"
	NodeOutput            NodeType = "output"
	NodeWorkspace         NodeType = "workspace"
	NodeCon               NodeType = "con"
	NodeDockArea          NodeType = "dockarea"
	NodeFloatingContainer NodeType = "floating_con"
)

// Valid reports whether t is one of the known node kinds
func (t NodeType) Valid() bool {
	switch t {
	case NodeRoot, NodeOutput, NodeWorkspace, NodeCon, NodeDockArea, NodeFloatingContainer:
		return true
	}
	return false
}

// Rect is node geometry in pixels
type Rect struct {
	X      int64 `json:"x"`
	Y      int64 `json:"y"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// String formats the rect as WxH@(X,Y)
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
}

// WindowProperties holds the X11 properties of a window
type WindowProperties struct {
	Class    string `json:"class,omitempty"`
	Instance string `json:"instance,omitempty"`
	Title    string `json:"title,omitempty"`
	Role     string `json:"window_role,omitempty"`
}

// Node is one node of a GET_TREE snapshot.
// Nodes are read-only once decoded.
type Node struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Type             NodeType          `json:"type"`
	Layout           string            `json:"layout,omitempty"`
	Output           string            `json:"output,omitempty"`
	Rect             Rect              `json:"rect"`
	Focused          bool              `json:"focused"`
	Urgent           bool              `json:"urgent"`
	Window           *int64            `json:"window"`
	WindowProperties *WindowProperties `json:"window_properties,omitempty"`
	Marks            []string          `json:"marks,omitempty"`
	Focus            []int64           `json:"focus"`
	Nodes            []*Node           `json:"nodes"`
	FloatingNodes    []*Node           `json:"floating_nodes"`
}

// IsWindow returns true for containers that hold displayable content
func (n *Node) IsWindow() bool {
	return n.Type == NodeCon && n.Window != nil
}

// Title returns the window title, falling back to the node name
func (n *Node) Title() string {
	if n.WindowProperties != nil && n.WindowProperties.Title != "" {
		return n.WindowProperties.Title
	}
	return n.Name
}

// Class returns the window class if known
func (n *Node) Class() string {
	if n.WindowProperties != nil {
		return n.WindowProperties.Class
	}
	return ""
}

// ParseTree decodes a GET_TREE reply payload
func ParseTree(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse tree: %w", err)
	}
	if root.Type != NodeRoot {
		return nil, fmt.Errorf("tree root has type %q, expected %q", root.Type, NodeRoot)
	}
	return &root, nil
}
