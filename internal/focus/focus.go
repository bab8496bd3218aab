package focus

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/i4/internal/models"
	"github.com/yourusername/i4/internal/server"
	"github.com/yourusername/i4/internal/tree"
)

// ErrNoWindow is returned when there is no window in the requested direction
var ErrNoWindow = errors.New("no window found")

// Commander sends commands to the window manager, usually an *ipc.Client
type Commander interface {
	RunCommand(ctx context.Context, command string) ([]models.CommandResult, error)
}

// Command returns the command that focuses the node with the given id
func Command(id int64) string {
	return fmt.Sprintf("[con_id=%d] focus", id)
}

// FocusWindow requests the window manager to focus a node.
func FocusWindow(ctx context.Context, c Commander, id int64) error {
	if _, err := c.RunCommand(ctx, Command(id)); err != nil {
		return fmt.Errorf("focus failed for node %d: %w", id, err)
	}
	return nil
}

// Target picks the window before or after the focused node.
// Operates entirely on the snapshot; nothing is sent.
func Target(snap *server.Snapshot, dir tree.Direction, policy tree.SiblingPolicy) (tree.Node, error) {
	focused, err := snap.Focused()
	if err != nil {
		return tree.Node{}, err
	}

	target, ok := tree.Adjacent(focused, dir, policy)
	if !ok {
		return tree.Node{}, fmt.Errorf("%w: no %s window", ErrNoWindow, dir)
	}
	return target, nil
}

// Cycle focuses the previous/next window relative to the focused node.
// Returns the node that was focused. No command is sent when there is no
// focused node or no window in that direction.
func Cycle(
	ctx context.Context,
	c Commander,
	snap *server.Snapshot,
	dir tree.Direction,
	policy tree.SiblingPolicy,
) (tree.Node, error) {
	target, err := Target(snap, dir, policy)
	if err != nil {
		return tree.Node{}, err
	}

	if err := FocusWindow(ctx, c, target.ID()); err != nil {
		return tree.Node{}, err
	}
	return target, nil
}
