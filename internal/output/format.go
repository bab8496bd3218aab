package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/i4/internal/models"
	"github.com/yourusername/i4/internal/tree"
)

// NodeSummary is the JSON form of a node
type NodeSummary struct {
	ID        int64           `json:"id"`
	Type      models.NodeType `json:"type"`
	Name      string          `json:"name,omitempty"`
	Class     string          `json:"class,omitempty"`
	Focused   bool            `json:"focused"`
	Window    *int64          `json:"window,omitempty"`
	Rect      models.Rect     `json:"rect"`
	Parent    *int64          `json:"parent,omitempty"`
	Workspace string          `json:"workspace,omitempty"`
	Output    string          `json:"output,omitempty"`
}

// Summarize builds the summary of n, including its workspace and output names
func Summarize(n tree.Node) NodeSummary {
	snap := n.Snapshot()
	s := NodeSummary{
		ID:      snap.ID,
		Type:    snap.Type,
		Name:    snap.Name,
		Class:   snap.Class(),
		Focused: snap.Focused,
		Window:  snap.Window,
		Rect:    snap.Rect,
	}
	if p, ok := n.Parent(); ok {
		id := p.ID()
		s.Parent = &id
	}
	if ws, ok := tree.Workspace(n); ok {
		s.Workspace = ws.Name()
	}
	if out, ok := tree.Output(n); ok {
		s.Output = out.Name()
	}
	return s
}

// FocusReport is the result of `list focused`
type FocusReport struct {
	Focused   NodeSummary  `json:"focused"`
	Workspace *NodeSummary `json:"workspace"`
	Output    *NodeSummary `json:"output"`
}

// NewFocusReport describes the focused node and its enclosing workspace and output
func NewFocusReport(focused tree.Node) FocusReport {
	r := FocusReport{Focused: Summarize(focused)}
	if ws, ok := tree.Workspace(focused); ok {
		s := Summarize(ws)
		r.Workspace = &s
	}
	if out, ok := tree.Output(focused); ok {
		s := Summarize(out)
		r.Output = &s
	}
	return r
}

// FormatNode renders a one-line description: kind, id, name, geometry
func FormatNode(n tree.Node) string {
	snap := n.Snapshot()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%d", snap.Type, snap.ID)
	if snap.Name != "" {
		fmt.Fprintf(&sb, " %q", snap.Name)
	}
	if class := snap.Class(); class != "" {
		fmt.Fprintf(&sb, " (%s)", class)
	}
	fmt.Fprintf(&sb, " %s", snap.Rect)
	return sb.String()
}

// formatOptional renders n or "None"
func formatOptional(n tree.Node, ok bool) string {
	if !ok {
		return "None"
	}
	return FormatNode(n)
}

// PrintFocusDetail prints the focused node with its workspace and output
func PrintFocusDetail(w io.Writer, focused tree.Node, style Style) {
	p := style.palette()
	ws, wsOK := tree.Workspace(focused)
	out, outOK := tree.Output(focused)

	fmt.Fprintf(w, "Focused node: %s\n", p.focused.Sprint(FormatNode(focused)))
	fmt.Fprintf(w, " | Parent workspace: %s\n", formatOptional(ws, wsOK))
	fmt.Fprintf(w, " | Parent output: %s\n", formatOptional(out, outOK))
}

// PrintJSON writes data as indented JSON
func PrintJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
