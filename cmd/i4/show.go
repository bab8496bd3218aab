package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/output"
	"github.com/yourusername/i4/internal/server"
	"github.com/yourusername/i4/internal/tree"
)

func (a *app) newShowCmd() *cobra.Command {
	var width, height int

	showCmd := &cobra.Command{
		Use:   "show [workspace]",
		Short: "Draw the windows of a workspace",
		Long: `Draws each window of a workspace as a box placed by its geometry.

Without an argument the workspace holding the focused node is shown.
The focused window is drawn with a heavier border.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
				var ws tree.Node
				if len(args) == 1 {
					found, ok := findWorkspace(snap.RootNode(), args[0])
					if !ok {
						return usagef("show: no workspace named %q", args[0])
					}
					ws = found
				} else {
					focused, err := snap.Focused()
					if err != nil {
						return reportNoFocus(cmd, err)
					}
					found, ok := tree.Workspace(focused)
					if !ok {
						return usagef("show: the focused node is not on a workspace, name one")
					}
					ws = found
				}

				style := a.style()
				if width > 0 {
					style.Width = width
				}
				if height > 0 {
					style.Height = height
				}
				return output.PrintWorkspace(cmd.OutOrStdout(), ws, style)
			})
		},
	}

	showCmd.Flags().IntVar(&width, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&height, "height", 0, "Override terminal height")

	return showCmd
}

func findWorkspace(root tree.Node, name string) (tree.Node, bool) {
	for _, ws := range tree.Workspaces(root) {
		if ws.Name() == name {
			return ws, true
		}
	}
	return tree.Node{}, false
}
