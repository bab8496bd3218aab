package server

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/i4/internal/models"
	"github.com/yourusername/i4/internal/tree"
)

// TreeSource fetches the layout tree, usually an *ipc.Client
type TreeSource interface {
	GetTree(ctx context.Context) (*models.Node, error)
}

// Snapshot is a parsed, read-only view of window manager state at a point in time.
// It contains everything needed to answer queries and pick a focus target.
type Snapshot struct {
	Root      *models.Node // Raw GET_TREE reply
	Tree      *tree.Tree   // Navigable view over Root
	FetchedAt time.Time
}

// Fetch calls GET_TREE ONCE and builds the navigable view over it.
func Fetch(ctx context.Context, src TreeSource, opts tree.Options) (*Snapshot, error) {
	root, err := src.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tree failed: %w", err)
	}
	return NewSnapshot(root, opts), nil
}

// NewSnapshot wraps an already decoded tree
func NewSnapshot(root *models.Node, opts tree.Options) *Snapshot {
	return &Snapshot{
		Root:      root,
		Tree:      tree.New(root, opts),
		FetchedAt: time.Now(),
	}
}

// RootNode returns the navigable root
func (s *Snapshot) RootNode() tree.Node {
	r, _ := s.Tree.Root()
	return r
}

// Focused returns the focused node, or tree.ErrNoFocus
func (s *Snapshot) Focused() (tree.Node, error) {
	n, ok := tree.FindFocused(s.RootNode())
	if !ok {
		return tree.Node{}, tree.ErrNoFocus
	}
	return n, nil
}

// Windows returns every window in document order
func (s *Snapshot) Windows() []tree.Node {
	return tree.CollectWindows(s.RootNode())
}

// VisibleWindows returns the windows on workspaces currently shown on an output
func (s *Snapshot) VisibleWindows() []tree.Node {
	var windows []tree.Node
	for _, ws := range tree.VisibleWorkspaces(s.RootNode()) {
		windows = append(windows, tree.CollectWindows(ws)...)
	}
	return windows
}
