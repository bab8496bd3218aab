package output

import (
	"fmt"
	"io"

	"github.com/yourusername/i4/internal/tree"
)

const (
	minCanvasRows = 6
	maxCanvasRows = 40
)

// VisualizeWorkspace draws the windows of a workspace as boxes placed by their
// rects. The focused window gets the heavy box style and is drawn last.
func VisualizeWorkspace(ws tree.Node, style Style) string {
	snap := ws.Snapshot()
	cols := style.Width
	if cols <= 0 {
		cols = 80
	}
	rows := canvasRows(cols, snap.Rect.Width, snap.Rect.Height, style.Height)

	canvas := NewCanvas(cols, rows)
	normal, heavy := style.boxStyles()
	canvas.DrawBox(0, 0, cols, rows, normal)

	// Inset by one so windows sit inside the workspace border.
	sc := NewScaler(snap.Rect, cols-2, rows-2)

	var focused []tree.Node
	for _, win := range tree.CollectWindows(ws) {
		if win.Focused() {
			focused = append(focused, win)
			continue
		}
		drawWindow(canvas, sc, win, normal)
	}
	for _, win := range focused {
		drawWindow(canvas, sc, win, heavy)
	}

	p := style.palette()
	header := fmt.Sprintf("Workspace %s", p.workspace.Sprint(snap.Name))
	if out, ok := tree.Output(ws); ok {
		header += fmt.Sprintf(" on %s", p.output.Sprint(out.Name()))
	}
	header += " " + p.dim.Sprint(snap.Rect.String())
	return header + "\n" + canvas.String()
}

func drawWindow(c *Canvas, sc *Scaler, win tree.Node, box BoxStyle) {
	x, y, w, h := sc.ToGrid(win.Snapshot().Rect)
	x, y = x+1, y+1
	c.DrawBox(x, y, w, h, box)
	if w > 2 && h > 2 {
		c.DrawText(x+1, y+1, windowLabel(win), w-2)
	}
}

// windowLabel prefers the class and falls back to the title
func windowLabel(win tree.Node) string {
	snap := win.Snapshot()
	label := snap.Class()
	if label == "" {
		label = snap.Title()
	}
	if label == "" {
		label = "window"
	}
	return fmt.Sprintf("%s #%d", label, snap.ID)
}

// canvasRows keeps the pixel aspect ratio, assuming cells twice as tall as
// they are wide.
func canvasRows(cols int, pixelW, pixelH int64, termRows int) int {
	rows := maxCanvasRows
	if pixelW > 0 && pixelH > 0 {
		rows = int(float64(cols) * float64(pixelH) / float64(pixelW) / 2)
	}
	limit := maxCanvasRows
	if termRows > 0 && termRows-2 < limit {
		limit = termRows - 2
	}
	rows = min(rows, limit)
	return max(rows, minCanvasRows)
}

// PrintWorkspace writes the workspace visualization to w
func PrintWorkspace(w io.Writer, ws tree.Node, style Style) error {
	_, err := fmt.Fprintln(w, VisualizeWorkspace(ws, style))
	return err
}
