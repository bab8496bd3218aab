package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/i4/internal/tree"
)

// PrintWindowsTable prints windows in document order
func PrintWindowsTable(w io.Writer, windows []tree.Node) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Class", "Workspace", "Output", "Size", "Focused")

	for _, win := range windows {
		snap := win.Snapshot()
		workspace, out := "-", "-"
		if ws, ok := tree.Workspace(win); ok {
			workspace = ws.Name()
		}
		if o, ok := tree.Output(win); ok {
			out = o.Name()
		}
		focused := ""
		if snap.Focused {
			focused = "*"
		}

		if err := table.Append(
			fmt.Sprintf("%d", snap.ID),
			truncate(snap.Title(), 40),
			truncate(snap.Class(), 20),
			workspace,
			out,
			fmt.Sprintf("%dx%d", snap.Rect.Width, snap.Rect.Height),
			focused,
		); err != nil {
			return err
		}
	}

	return table.Render()
}

// PrintWorkspacesTable prints workspaces with their output and window count
func PrintWorkspacesTable(w io.Writer, workspaces []tree.Node) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Output", "Layout", "Windows", "Visible")

	for _, ws := range workspaces {
		snap := ws.Snapshot()
		out := "-"
		if o, ok := tree.Output(ws); ok {
			out = o.Name()
		}
		visible := ""
		if tree.IsVisible(ws) {
			visible = "*"
		}

		if err := table.Append(
			fmt.Sprintf("%d", snap.ID),
			snap.Name,
			out,
			snap.Layout,
			fmt.Sprintf("%d", len(tree.CollectWindows(ws))),
			visible,
		); err != nil {
			return err
		}
	}

	return table.Render()
}
