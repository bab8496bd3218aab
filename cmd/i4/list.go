package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/logging"
	"github.com/yourusername/i4/internal/output"
	"github.com/yourusername/i4/internal/server"
	"github.com/yourusername/i4/internal/tree"
)

var listTargets = []string{"all", "focused", "visible", "windows", "workspaces"}

// requireSubcommand rejects a parent command run without a known subcommand
func requireSubcommand(choices []string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return usagef("%s: missing argument, expected one of: %s",
				cmd.CommandPath(), strings.Join(choices, ", "))
		}
		return usagef("%s: unknown argument %q, expected one of: %s",
			cmd.CommandPath(), args[0], strings.Join(choices, ", "))
	}
}

func (a *app) newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list <all|focused|visible|windows|workspaces>",
		Short: "List parts of the layout tree",
		RunE:  requireSubcommand(listTargets),
	}

	listCmd.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "Print the whole layout tree",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
					if a.cfg.Output.JSON {
						return output.PrintJSON(cmd.OutOrStdout(), snap.Root)
					}
					return output.RenderTree(cmd.OutOrStdout(), snap.RootNode(), a.style())
				})
			},
		},
		&cobra.Command{
			Use:   "focused",
			Short: "Show the focused node with its workspace and output",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
					focused, err := snap.Focused()
					if err != nil {
						return reportNoFocus(cmd, err)
					}
					if a.cfg.Output.JSON {
						return output.PrintJSON(cmd.OutOrStdout(), output.NewFocusReport(focused))
					}
					output.PrintFocusDetail(cmd.OutOrStdout(), focused, a.style())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "visible",
			Short: "List windows on the visible workspaces",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
					return a.printWindows(cmd, snap.VisibleWindows())
				})
			},
		},
		&cobra.Command{
			Use:   "windows",
			Short: "List every window in tree order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
					return a.printWindows(cmd, snap.Windows())
				})
			},
		},
		&cobra.Command{
			Use:   "workspaces",
			Short: "List workspaces with their output and window count",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
					workspaces := tree.Workspaces(snap.RootNode())
					if a.cfg.Output.JSON {
						return output.PrintJSON(cmd.OutOrStdout(), summarize(workspaces))
					}
					return output.PrintWorkspacesTable(cmd.OutOrStdout(), workspaces)
				})
			},
		},
	)

	return listCmd
}

func (a *app) printWindows(cmd *cobra.Command, windows []tree.Node) error {
	logging.Debug().Int("windows", len(windows)).Msg("listing windows")
	if a.cfg.Output.JSON {
		return output.PrintJSON(cmd.OutOrStdout(), summarize(windows))
	}
	if len(windows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No windows")
		return nil
	}
	return output.PrintWindowsTable(cmd.OutOrStdout(), windows)
}

func summarize(nodes []tree.Node) []output.NodeSummary {
	out := make([]output.NodeSummary, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, output.Summarize(n))
	}
	return out
}

// reportNoFocus prints the no-focus message; any other error is returned
func reportNoFocus(cmd *cobra.Command, err error) error {
	if !errors.Is(err, tree.ErrNoFocus) {
		return err
	}
	logging.Info().Str("cmd", cmd.CommandPath()).Msg("no node in focus")
	fmt.Fprintln(cmd.OutOrStdout(), "No node in focus")
	return nil
}
