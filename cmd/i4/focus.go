package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/i4/internal/focus"
	"github.com/yourusername/i4/internal/ipc"
	"github.com/yourusername/i4/internal/logging"
	"github.com/yourusername/i4/internal/output"
	"github.com/yourusername/i4/internal/server"
	"github.com/yourusername/i4/internal/tree"
)

var spatialDirections = []string{"left", "right", "up", "down"}

func (a *app) newFocusCmd() *cobra.Command {
	focusCmd := &cobra.Command{
		Use:   "focus <previous|next|left|right|up|down>",
		Short: "Move focus to another window",
		RunE:  requireSubcommand([]string{"previous", "next", "left", "right", "up", "down"}),
	}

	focusCmd.AddCommand(
		&cobra.Command{
			Use:     "previous",
			Aliases: []string{"prev"},
			Short:   "Focus the window before the focused node in tree order",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cycleFocus(cmd, tree.Previous)
			},
		},
		&cobra.Command{
			Use:   "next",
			Short: "Focus the window after the focused node in tree order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cycleFocus(cmd, tree.Next)
			},
		},
	)
	for _, dir := range spatialDirections {
		focusCmd.AddCommand(notImplementedCmd(dir, "Focus the window "+dir+" of the focused one"))
	}

	return focusCmd
}

func (a *app) cycleFocus(cmd *cobra.Command, dir tree.Direction) error {
	name := "focus-" + dir.String()
	logging.Info().Str("cmd", name).Msg("starting")

	return a.withSnapshot(cmd, func(ctx context.Context, c *ipc.Client, snap *server.Snapshot) error {
		target, err := focus.Cycle(ctx, c, snap, dir, a.siblingPolicy())
		switch {
		case errors.Is(err, tree.ErrNoFocus):
			return reportNoFocus(cmd, err)
		case errors.Is(err, focus.ErrNoWindow):
			logging.Info().Str("cmd", name).Msg("no window in that direction")
			fmt.Fprintf(cmd.OutOrStdout(), "No %s window\n", dir)
			return nil
		case err != nil:
			logging.Failure().Str("cmd", name).Err(err).Msg("failed to focus")
			return fmt.Errorf("failed to focus %s window: %w", dir, err)
		}

		logging.Info().Str("cmd", name).Int64("target", target.ID()).Msg("focused")
		if a.cfg.Output.JSON {
			return output.PrintJSON(cmd.OutOrStdout(), output.Summarize(target))
		}
		return nil
	})
}

func newMoveCmd() *cobra.Command {
	moveCmd := &cobra.Command{
		Use:   "move <left|right|up|down>",
		Short: "Move the focused window",
		RunE:  requireSubcommand(spatialDirections),
	}
	for _, dir := range spatialDirections {
		moveCmd.AddCommand(notImplementedCmd(dir, "Move the focused window "+dir))
	}
	return moveCmd
}

// notImplementedCmd declares a spatial command that does nothing yet
func notImplementedCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short + " (not implemented)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Info().Str("cmd", cmd.CommandPath()).Msg("not implemented")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not implemented\n", cmd.CommandPath())
			return nil
		},
	}
}
