package output

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/yourusername/i4/internal/models"
	"github.com/yourusername/i4/internal/tree"
)

// treeGlyphs are the connectors drawn in front of each tree line
type treeGlyphs struct {
	branch string
	last   string
	pipe   string
	blank  string
}

var (
	unicodeGlyphs = treeGlyphs{branch: "├── ", last: "└── ", pipe: "│   ", blank: "    "}
	asciiGlyphs   = treeGlyphs{branch: "|-- ", last: "`-- ", pipe: "|   ", blank: "    "}
)

const focusMarker = " *"

// RenderTree writes one line per node under root, indented by depth.
// The focused node is highlighted and marked with a trailing asterisk.
func RenderTree(w io.Writer, root tree.Node, style Style) error {
	if !root.Valid() {
		return nil
	}

	glyphs := unicodeGlyphs
	if style.ASCII {
		glyphs = asciiGlyphs
	}
	p := style.palette()
	bw := bufio.NewWriter(w)

	type frame struct {
		node   tree.Node
		prefix string // indentation inherited by this node's children
		lead   string // indentation plus connector for this node's own line
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := FormatNode(f.node)
		suffix := ""
		if f.node.Focused() {
			suffix = focusMarker
		}
		if style.Width > 0 {
			room := style.Width - runeLen(f.lead) - runeLen(suffix)
			label = truncate(label, max(room, 1))
		}

		bw.WriteString(f.lead)
		bw.WriteString(labelColor(p, f.node).Sprint(label + suffix))
		bw.WriteByte('\n')

		kids := f.node.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			connector, indent := glyphs.branch, glyphs.pipe
			if i == len(kids)-1 {
				connector, indent = glyphs.last, glyphs.blank
			}
			stack = append(stack, frame{
				node:   kids[i],
				prefix: f.prefix + indent,
				lead:   f.prefix + connector,
			})
		}
	}

	return bw.Flush()
}

func labelColor(p palette, n tree.Node) *color.Color {
	if n.Focused() {
		return p.focused
	}
	switch n.Kind() {
	case models.NodeOutput:
		return p.output
	case models.NodeWorkspace:
		return p.workspace
	}
	if n.IsWindow() {
		return p.window
	}
	return p.dim
}

func runeLen(s string) int {
	return len([]rune(s))
}
